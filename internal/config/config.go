package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	CORS            CORSConfig    `mapstructure:"cors"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0s"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AnalysisConfig struct {
	MaxSuggestions  int `mapstructure:"max_suggestions" validate:"min=1"`
	MaxQuestions    int `mapstructure:"max_questions" validate:"min=1"`
	BulkLimit       int `mapstructure:"bulk_limit" validate:"min=1,max=1000"`
	BulkConcurrency int `mapstructure:"bulk_concurrency" validate:"min=1,max=100"`
}

type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl" validate:"gt=0s"`
	PurgeInterval time.Duration `mapstructure:"purge_interval" validate:"gt=0s"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity" validate:"min=1"`
	Window   time.Duration `mapstructure:"window" validate:"gt=0s"`
}

type ProvidersConfig struct {
	Timeout       time.Duration    `mapstructure:"timeout" validate:"gt=0s"`
	RetryAttempts uint             `mapstructure:"retry_attempts" validate:"max=5"`
	Locale        LocaleConfig     `mapstructure:"locale"`
	Datamuse      DatamuseConfig   `mapstructure:"datamuse"`
	Trends        TrendsConfig     `mapstructure:"trends"`
	DuckDuckGo    DuckDuckGoConfig `mapstructure:"duckduckgo"`
}

type LocaleConfig struct {
	Geo      string `mapstructure:"geo" validate:"geo"`
	Language string `mapstructure:"language" validate:"required,lowercase,min=2,max=3"`
}

type DatamuseConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type TrendsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type DuckDuckGoConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Region  string `mapstructure:"region" validate:"required"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kwinsight")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("analysis.max_suggestions", 10)
	v.SetDefault("analysis.max_questions", 8)
	v.SetDefault("analysis.bulk_limit", 100)
	v.SetDefault("analysis.bulk_concurrency", 8)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.purge_interval", 10*time.Minute)
	v.SetDefault("rate_limit.capacity", 100)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.retry_attempts", 2)
	v.SetDefault("providers.locale.geo", "FR")
	v.SetDefault("providers.locale.language", "fr")
	v.SetDefault("providers.datamuse.base_url", "https://api.datamuse.com")
	v.SetDefault("providers.trends.enabled", true)
	v.SetDefault("providers.trends.base_url", "https://trends.google.com/trends/api")
	// Autocomplete is an extra suggestion source and can be switched off on its own.
	v.SetDefault("providers.duckduckgo.enabled", true)
	v.SetDefault("providers.duckduckgo.base_url", "https://duckduckgo.com")
	v.SetDefault("providers.duckduckgo.region", "fr-fr")

	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}
	if err := v.BindEnv("providers.locale.geo", "KWINSIGHT_GEO"); err != nil {
		return nil, fmt.Errorf("failed to bind KWINSIGHT_GEO environment variable: %w", err)
	}
	if err := v.BindEnv("providers.locale.language", "KWINSIGHT_LANGUAGE"); err != nil {
		return nil, fmt.Errorf("failed to bind KWINSIGHT_LANGUAGE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
