// Package testutil provides shared test helpers for config files and fake upstreams.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewDatamuseServer answers /words with the body registered for the first query
// parameter present in the request, out of "sp", "ml" and "rel_trg". Anything else
// gets an empty list.
func NewDatamuseServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for _, param := range []string{"sp", "ml", "rel_trg"} {
			if r.URL.Query().Get(param) == "" {
				continue
			}
			if body, ok := bodies[param]; ok {
				_, _ = fmt.Fprint(w, body)
				return
			}
		}
		_, _ = fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(server.Close)
	return server
}

// SetupTestConfig writes a config file that points the lexical provider at datamuseURL
// and disables the other providers. extra is appended as top-level YAML.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, datamuseURL string, extra string) string {
	t.Helper()

	configContent := fmt.Sprintf(`providers:
  retry_attempts: 0
  datamuse:
    base_url: %s
  trends:
    enabled: false
  duckduckgo:
    enabled: false
%s`, datamuseURL, extra)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	return configPath
}
