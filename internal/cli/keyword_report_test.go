package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
	mock_cli "github.com/at-ishikawa/kwinsight/internal/mocks/cli"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

var cafeParis = keyword.Analysis{
	Keyword:    "café paris",
	Difficulty: 61,
	Suggestions: []keyword.Suggestion{
		{Keyword: "café", Score: 95},
		{Keyword: "paris tour", Score: 20},
	},
	Questions: []keyword.Question{
		{Question: "pourquoi café paris ?", Score: 70},
	},
	Timestamp: "2025-03-04T05:06:07.000Z",
}

func TestKeywordReporter_Analyze(t *testing.T) {
	tests := []struct {
		name         string
		asJSON       bool
		analysis     keyword.Analysis
		err          error
		wantErr      error
		wantContains []string
	}{
		{
			name:     "report",
			analysis: cafeParis,
			wantContains: []string{
				"café paris\n",
				"Difficulty: 61/100 (medium)\n",
				"   95  café\n",
				"   20  paris tour\n",
				"   70  pourquoi café paris ?\n",
				"Analyzed at 2025-03-04T05:06:07.000Z",
			},
		},
		{
			name: "nothing found",
			analysis: keyword.Analysis{
				Keyword:     "zzz",
				Difficulty:  20,
				Suggestions: []keyword.Suggestion{},
				Questions:   []keyword.Question{},
			},
			wantContains: []string{
				"Difficulty: 20/100 (easy)\n",
				"Suggestions\n  none\n",
				"Questions\n  none\n",
			},
		},
		{
			name:         "json",
			asJSON:       true,
			analysis:     cafeParis,
			wantContains: []string{`"difficulty": 61`, `"question": "pourquoi café paris ?"`},
		},
		{
			name:    "rate limited",
			err:     analysis.ErrRateLimited,
			wantErr: analysis.ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mock_cli.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().Analyze(gomock.Any(), "Café Paris").Return(tt.analysis, tt.err)

			var out bytes.Buffer
			err := NewKeywordReporter(analyzer, &out, tt.asJSON).Analyze(context.Background(), "Café Paris")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestKeywordReporter_Analyze_JSONRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mock_cli.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), "café paris").Return(cafeParis, nil)

	var out bytes.Buffer
	require.NoError(t, NewKeywordReporter(analyzer, &out, true).Analyze(context.Background(), "café paris"))

	var got keyword.Analysis
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, cafeParis, got)
}

func TestKeywordReporter_PartialResults(t *testing.T) {
	tests := []struct {
		name         string
		asJSON       bool
		setup        func(m *mock_cli.MockAnalyzer)
		run          func(r *KeywordReporter) error
		wantContains []string
		wantErr      error
	}{
		{
			name: "suggestions",
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Suggestions(gomock.Any(), "seo").Return([]keyword.Suggestion{{Keyword: "ranking", Score: 80}}, nil)
			},
			run: func(r *KeywordReporter) error {
				return r.Suggestions(context.Background(), "seo")
			},
			wantContains: []string{"Suggestions\n", "   80  ranking\n"},
		},
		{
			name:   "suggestions as json",
			asJSON: true,
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Suggestions(gomock.Any(), "seo").Return([]keyword.Suggestion{}, nil)
			},
			run: func(r *KeywordReporter) error {
				return r.Suggestions(context.Background(), "seo")
			},
			wantContains: []string{`"keyword": "seo"`, `"suggestions": []`},
		},
		{
			name: "questions",
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Questions(gomock.Any(), "seo").Return([]keyword.Question{{Question: "pourquoi seo ?", Score: 55}}, nil)
			},
			run: func(r *KeywordReporter) error {
				return r.Questions(context.Background(), "seo")
			},
			wantContains: []string{"Questions\n", "   55  pourquoi seo ?\n"},
		},
		{
			name: "difficulty",
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Difficulty(gomock.Any(), "seo").Return(80, nil)
			},
			run: func(r *KeywordReporter) error {
				return r.Difficulty(context.Background(), "seo")
			},
			wantContains: []string{"Difficulty: 80/100 (hard)\n"},
		},
		{
			name:   "difficulty as json",
			asJSON: true,
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Difficulty(gomock.Any(), "seo").Return(50, nil)
			},
			run: func(r *KeywordReporter) error {
				return r.Difficulty(context.Background(), "seo")
			},
			wantContains: []string{`"difficulty": 50`},
		},
		{
			name: "invalid keyword",
			setup: func(m *mock_cli.MockAnalyzer) {
				m.EXPECT().Questions(gomock.Any(), " ").Return(nil, fmt.Errorf("%w: %w", analysis.ErrInvalidInput, keyword.ErrEmpty))
			},
			run: func(r *KeywordReporter) error {
				return r.Questions(context.Background(), " ")
			},
			wantErr: analysis.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mock_cli.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			var out bytes.Buffer
			err := tt.run(NewKeywordReporter(analyzer, &out, tt.asJSON))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		difficulty int
		want       string
	}{
		{difficulty: 20, want: "easy"},
		{difficulty: 32, want: "easy"},
		{difficulty: 33, want: "medium"},
		{difficulty: 65, want: "medium"},
		{difficulty: 66, want: "hard"},
		{difficulty: 100, want: "hard"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, difficultyLabel(tt.difficulty))
		})
	}
}
