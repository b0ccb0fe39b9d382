package testutil

import (
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:1", "rate_limit:\n  capacity: 1\n")

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:1")
	assert.Contains(t, string(content), "enabled: false")
	assert.Contains(t, string(content), "rate_limit:\n  capacity: 1\n")
}

func TestNewDatamuseServer(t *testing.T) {
	server := NewDatamuseServer(t, map[string]string{
		"sp": `[{"word":"seo","score":1,"tags":["f:10"]}]`,
	})

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "registered", query: "sp=seo&md=f&max=1", want: `[{"word":"seo","score":1,"tags":["f:10"]}]`},
		{name: "unregistered", query: "ml=seo&max=10", want: `[]`},
		{name: "no relation", query: "max=1", want: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := http.Get(server.URL + "/words?" + tt.query)
			require.NoError(t, err)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}
