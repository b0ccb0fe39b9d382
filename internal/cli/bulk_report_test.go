package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
	mock_cli "github.com/at-ishikawa/kwinsight/internal/mocks/cli"
)

func TestReadKeywordFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name: "list",
			content: `- café paris
- "  SEO  "
`,
			want: []string{"café paris", "  SEO  "},
		},
		{
			name: "keywords key",
			content: `keywords:
  - audit
  - backlink
`,
			want: []string{"audit", "backlink"},
		},
		{
			name:    "empty list",
			content: `[]`,
			want:    []string{},
		},
		{
			name:    "scalar",
			content: `seo`,
			wantErr: true,
		},
		{
			name:    "empty file",
			content: ``,
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: `keywords: [unclosed`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "keywords.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := ReadKeywordFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadKeywordFile_Missing(t *testing.T) {
	_, err := ReadKeywordFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKeywordReporter_Bulk(t *testing.T) {
	raws := []string{"café paris", "broken", ""}

	t.Run("drops failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mock_cli.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeBulk(gomock.Any(), raws).Return([]analysis.BulkResult{
			{Keyword: "café paris", Analysis: cafeParis},
		}, nil)

		var out bytes.Buffer
		require.NoError(t, NewKeywordReporter(analyzer, &out, false).Bulk(context.Background(), raws, false))
		assert.Contains(t, out.String(), "Keyword")
		assert.Contains(t, out.String(), "café paris")
		assert.NotContains(t, out.String(), "broken")
		assert.Contains(t, out.String(), "Analyzed 1 of 3 keywords")
	})

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mock_cli.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeBulk(gomock.Any(), raws).Return([]analysis.BulkResult{
			{Keyword: "café paris", Analysis: cafeParis},
		}, nil)

		var out bytes.Buffer
		require.NoError(t, NewKeywordReporter(analyzer, &out, true).Bulk(context.Background(), raws, false))

		var got struct {
			Results []analysis.BulkResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []analysis.BulkResult{{Keyword: "café paris", Analysis: cafeParis}}, got.Results)
	})

	t.Run("too many keywords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mock_cli.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeBulk(gomock.Any(), raws).Return(nil, fmt.Errorf("%w: 101 keywords", analysis.ErrInvalidInput))

		var out bytes.Buffer
		err := NewKeywordReporter(analyzer, &out, false).Bulk(context.Background(), raws, false)
		assert.ErrorIs(t, err, analysis.ErrInvalidInput)
	})
}

func TestKeywordReporter_BulkDetails(t *testing.T) {
	raws := []string{"café paris", "broken", "", "audit"}
	outcomes := []analysis.BulkOutcome{
		{Keyword: "café paris", Analysis: cafeParis},
		{Keyword: "broken", Err: fmt.Errorf("%w: panic", analysis.ErrAnalysisFailed)},
		{Keyword: "", Err: fmt.Errorf("%w: %w", analysis.ErrInvalidInput, keyword.ErrEmpty)},
		{Keyword: "audit", Err: analysis.ErrRateLimited},
	}

	t.Run("report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mock_cli.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeBulkOutcomes(gomock.Any(), raws).Return(outcomes, nil)

		var out bytes.Buffer
		require.NoError(t, NewKeywordReporter(analyzer, &out, false).Bulk(context.Background(), raws, true))
		assert.Contains(t, out.String(), "failed: analysis failed")
		assert.Contains(t, out.String(), "failed: invalid keyword")
		assert.Contains(t, out.String(), "failed: rate limit exceeded")
		assert.Contains(t, out.String(), "Analyzed 1 of 4 keywords, 3 failed")
	})

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mock_cli.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeBulkOutcomes(gomock.Any(), raws).Return(outcomes, nil)

		var out bytes.Buffer
		require.NoError(t, NewKeywordReporter(analyzer, &out, true).Bulk(context.Background(), raws, true))
		assert.JSONEq(t, `{"results":[
			{"keyword":"café paris","analysis":{"keyword":"café paris","difficulty":61,
				"suggestions":[{"keyword":"café","score":95},{"keyword":"paris tour","score":20}],
				"questions":[{"question":"pourquoi café paris ?","score":70}],
				"timestamp":"2025-03-04T05:06:07.000Z"}},
			{"keyword":"broken","error":"analysis failed"},
			{"keyword":"","error":"invalid keyword"},
			{"keyword":"audit","error":"rate limit exceeded"}
		]}`, out.String())
	})
}
