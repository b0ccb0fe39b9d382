package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kwinsight/internal/cli"
)

func newKeywordCommand(use, short string, run func(r *cli.KeywordReporter, ctx context.Context, raw string) error) *cobra.Command {
	var output *outputFlags

	cmd := &cobra.Command{
		Use:   use + " <keyword>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReporter(cmd.Context(), cmd.OutOrStdout(), output.asJSON(), func(ctx context.Context, r *cli.KeywordReporter) error {
				return run(r, ctx, args[0])
			})
		},
	}
	output = addOutputFlags(cmd.Flags())
	return cmd
}

func newAnalyzeCommand() *cobra.Command {
	return newKeywordCommand("analyze", "Show suggestions, questions and difficulty of a keyword", (*cli.KeywordReporter).Analyze)
}

func newSuggestionsCommand() *cobra.Command {
	return newKeywordCommand("suggestions", "Show related keywords", (*cli.KeywordReporter).Suggestions)
}

func newQuestionsCommand() *cobra.Command {
	return newKeywordCommand("questions", "Show questions people ask about a keyword", (*cli.KeywordReporter).Questions)
}

func newDifficultyCommand() *cobra.Command {
	return newKeywordCommand("difficulty", "Show the ranking difficulty of a keyword", (*cli.KeywordReporter).Difficulty)
}
