package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			CORS:            CORSConfig{AllowedOrigins: []string{"*"}},
			ShutdownTimeout: 10 * time.Second,
		},
		Analysis: AnalysisConfig{
			MaxSuggestions:  10,
			MaxQuestions:    8,
			BulkLimit:       100,
			BulkConcurrency: 8,
		},
		Cache: CacheConfig{
			TTL:           time.Hour,
			PurgeInterval: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Capacity: 100,
			Window:   time.Minute,
		},
		Providers: ProvidersConfig{
			Timeout:       10 * time.Second,
			RetryAttempts: 2,
			Locale:        LocaleConfig{Geo: "FR", Language: "fr"},
			Datamuse:      DatamuseConfig{BaseURL: "https://api.datamuse.com"},
			Trends:        TrendsConfig{Enabled: true, BaseURL: "https://trends.google.com/trends/api"},
			DuckDuckGo: DuckDuckGoConfig{
				Enabled: true,
				BaseURL: "https://duckduckgo.com",
				Region:  "fr-fr",
			},
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:    "no config file uses defaults",
			wantErr: false,
			want:    defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 8080
  cors:
    allowed_origins:
      - http://localhost:5173
cache:
  ttl: 30m
rate_limit:
  capacity: 20
  window: 10s
providers:
  timeout: 3s
  retry_attempts: 0
  locale:
    geo: BE
  duckduckgo:
    enabled: false
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 8080
				cfg.Server.CORS.AllowedOrigins = []string{"http://localhost:5173"}
				cfg.Cache.TTL = 30 * time.Minute
				cfg.RateLimit = RateLimitConfig{Capacity: 20, Window: 10 * time.Second}
				cfg.Providers.Timeout = 3 * time.Second
				cfg.Providers.RetryAttempts = 0
				cfg.Providers.Locale.Geo = "BE"
				cfg.Providers.DuckDuckGo.Enabled = false
				return cfg
			},
		},
		{
			name: "config in the working directory",
			configContent: `analysis:
  bulk_concurrency: 4
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Analysis.BulkConcurrency = 4
				return cfg
			},
		},
		{
			name: "environment overrides",
			env: map[string]string{
				"PORT":               "4000",
				"KWINSIGHT_GEO":      "CA",
				"KWINSIGHT_LANGUAGE": "en",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 4000
				cfg.Providers.Locale = LocaleConfig{Geo: "CA", Language: "en"}
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8080
  invalid yaml format here [[[
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid geo",
			configContent: `providers:
  locale:
    geo: fr
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"providers.locale.geo must be a two-letter upper-case country code such as FR",
			},
		},
		{
			name: "invalid limits",
			configContent: `rate_limit:
  capacity: 0
analysis:
  bulk_limit: 5000
providers:
  datamuse:
    base_url: not a url
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"capacity",
				"bulk_limit",
				"base_url",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "kwinsight.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
				t.Setenv("HOME", tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
