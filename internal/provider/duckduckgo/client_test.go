package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

func TestClient_Suggestions(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []keyword.Suggestion
	}{
		{
			name:   "scores follow the rank",
			status: http.StatusOK,
			body:   `[{"phrase":"seo google"},{"phrase":" "},{"phrase":"seo definition"},{"phrase":"seo gratuit"}]`,
			want: []keyword.Suggestion{
				{Keyword: "seo google", Score: 100},
				{Keyword: "seo definition", Score: 90},
				{Keyword: "seo gratuit", Score: 80},
			},
		},
		{
			name:   "no completion",
			status: http.StatusOK,
			body:   `[]`,
			want:   []keyword.Suggestion{},
		},
		{
			name:   "client error",
			status: http.StatusForbidden,
			body:   `blocked`,
			want:   nil,
		},
		{
			name:   "malformed payload",
			status: http.StatusOK,
			body:   `{"phrase":"seo"}`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/ac/", r.URL.Path)
				assert.Equal(t, "seo", r.URL.Query().Get("q"))
				assert.Equal(t, "fr-fr", r.URL.Query().Get("kl"))
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL})
			defer client.Close()

			assert.Equal(t, tt.want, client.Suggestions(context.Background(), "seo"))
		})
	}
}

func TestRankScore(t *testing.T) {
	tests := []struct {
		rank int
		want int
	}{
		{rank: 0, want: 100},
		{rank: 1, want: 90},
		{rank: 8, want: 20},
		{rank: 9, want: 20},
		{rank: 30, want: 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rank %d", tt.rank), func(t *testing.T) {
			assert.Equal(t, tt.want, rankScore(tt.rank))
		})
	}
}
