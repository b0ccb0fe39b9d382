package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

func bulkKeywords(n int) []string {
	raws := make([]string, n)
	for i := range raws {
		raws[i] = fmt.Sprintf("Keyword %d", i)
	}
	return raws
}

// expectAny makes every adapter answer any keyword, failing for the one named broken.
func (m mockSources) expectAny(broken keyword.Keyword) {
	m.primary.EXPECT().Suggestions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, k keyword.Keyword) []keyword.Suggestion {
			if k == broken {
				panic("malformed upstream record")
			}
			return []keyword.Suggestion{{Keyword: k.String() + " tips", Score: 70}}
		}).AnyTimes()
	m.secondary.EXPECT().Suggestions(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.questions.EXPECT().Questions(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.frequency.EXPECT().Score(gomock.Any(), gomock.Any()).Return(30).AnyTimes()
	m.competition.EXPECT().Score(gomock.Any(), gomock.Any()).Return(70).AnyTimes()
}

func TestEngine_AnalyzeBulk(t *testing.T) {
	tests := []struct {
		name       string
		raws       []string
		broken     keyword.Keyword
		wantErr    error
		wantLen    int
		wantPermit int32
	}{
		{
			name:    "too many keywords",
			raws:    bulkKeywords(101),
			wantErr: ErrInvalidInput,
		},
		{
			name:       "at the limit",
			raws:       bulkKeywords(100),
			wantLen:    100,
			wantPermit: 100,
		},
		{
			name:       "one failure is dropped",
			raws:       bulkKeywords(100),
			broken:     "keyword 42",
			wantLen:    99,
			wantPermit: 100,
		},
		{
			name:       "blank keywords are dropped",
			raws:       []string{"seo", "  ", "SEO "},
			wantLen:    2,
			wantPermit: 1,
		},
		{
			name: "empty request",
			raws: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMockSources(ctrl)
			if tt.wantErr == nil {
				m.expectAny(tt.broken)
			}
			limiter := &countingLimiter{budget: 1000}
			engine := NewEngine(m.sources(), limiter, Config{})

			got, err := engine.AnalyzeBulk(context.Background(), tt.raws)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Zero(t, limiter.calls.Load())
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantPermit, limiter.calls.Load())
			for _, result := range got {
				assert.NotEqual(t, tt.broken, result.Analysis.Keyword)
			}
		})
	}
}

func TestEngine_AnalyzeBulk_KeepsInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMockSources(ctrl)
	m.expectAny("keyword 3")
	engine := NewEngine(m.sources(), nil, Config{BulkConcurrency: 4})

	raws := bulkKeywords(20)
	got, err := engine.AnalyzeBulk(context.Background(), raws)
	require.NoError(t, err)

	var want []string
	for _, raw := range raws {
		if raw != "Keyword 3" {
			want = append(want, raw)
		}
	}
	var keywords []string
	for _, result := range got {
		keywords = append(keywords, result.Keyword)
	}
	assert.Equal(t, want, keywords)
	assert.Equal(t, "keyword 0", got[0].Analysis.Keyword.String())
	assert.Equal(t, []keyword.Suggestion{{Keyword: "keyword 0 tips", Score: 70}}, got[0].Analysis.Suggestions)
}

func TestEngine_AnalyzeBulkOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMockSources(ctrl)
	m.expectAny("broken")
	// One worker keeps the permit order equal to the input order.
	engine := NewEngine(m.sources(), &countingLimiter{budget: 2}, Config{BulkConcurrency: 1})

	got, err := engine.AnalyzeBulkOutcomes(context.Background(), []string{"seo", "broken", "", "audit"})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "seo", got[0].Keyword)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, keyword.Keyword("seo"), got[0].Analysis.Keyword)
	assert.ErrorIs(t, got[1].Err, ErrAnalysisFailed)
	assert.ErrorIs(t, got[2].Err, ErrInvalidInput)
	assert.ErrorIs(t, got[3].Err, ErrRateLimited)
}

func TestEngine_AnalyzeBulk_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewEngine(newMockSources(ctrl).sources(), nil, Config{BulkLimit: 2})

	_, err := engine.AnalyzeBulk(context.Background(), []string{"a", "b", "c"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
