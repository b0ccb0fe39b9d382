package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kwinsight/internal/cli"
)

func newBulkCommand() *cobra.Command {
	var (
		file    string
		details bool
		output  *outputFlags
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Analyze every keyword listed in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := cli.ReadKeywordFile(file)
			if err != nil {
				return fmt.Errorf("cli.ReadKeywordFile() > %w", err)
			}
			return withReporter(cmd.Context(), cmd.OutOrStdout(), output.asJSON(), func(ctx context.Context, r *cli.KeywordReporter) error {
				return r.Bulk(ctx, keywords, details)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a list of keywords")
	cmd.Flags().BoolVar(&details, "details", false, "Also report keywords that failed and why")
	output = addOutputFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
