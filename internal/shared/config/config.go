package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	AnalyzerBaseURL string
	AnalyzerTimeout time.Duration
	MaxUploadBytes  int64
	SessionTTL      time.Duration
	TrendFallback   []int
	LogLevel        string
	LogFormat       string
}

var defaults = map[string]any{
	"PORT":               "8080",
	"ENV":                "dev",
	"CORS_ALLOW_ORIGINS": "http://localhost:5173",
	"ANALYZER_BASE_URL":  "http://127.0.0.1:8000",
	"ANALYZER_TIMEOUT":   "30s",
	"MAX_UPLOAD_BYTES":   int64(10 << 20),
	"SESSION_TTL":        "30m",
	"TREND_FALLBACK":     "45,60,72",
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "",
}

// Load reads configuration from environment variables with sensible defaults.
// Local .env files are merged first for dev convenience; real env wins.
func Load() (Config, error) {
	loadEnvFiles(".env", "cmd/.env")
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	trend, err := ParseTrend(v.GetString("TREND_FALLBACK"))
	if err != nil {
		return Config{}, fmt.Errorf("TREND_FALLBACK: %w", err)
	}
	timeout, err := parseDuration(v.GetString("ANALYZER_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("ANALYZER_TIMEOUT: %w", err)
	}
	ttl, err := parseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
	}
	maxUpload := v.GetInt64("MAX_UPLOAD_BYTES")
	if maxUpload <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	baseURL := strings.TrimSpace(v.GetString("ANALYZER_BASE_URL"))
	if baseURL == "" {
		return Config{}, fmt.Errorf("ANALYZER_BASE_URL is required")
	}

	env := normalizeEnv(v.GetString("ENV"))
	logFormat := strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if logFormat == "" {
		logFormat = "console"
		if env == "production" || env == "staging" {
			logFormat = "json"
		}
	}

	return Config{
		Port:            v.GetString("PORT"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		AnalyzerBaseURL: baseURL,
		AnalyzerTimeout: timeout,
		MaxUploadBytes:  maxUpload,
		SessionTTL:      ttl,
		TrendFallback:   trend,
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       logFormat,
	}, nil
}

// ParseTrend parses a comma separated list of scores in 0..100.
// An empty string yields an empty series.
func ParseTrend(raw string) ([]int, error) {
	parts := splitAndTrim(raw)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q", p)
		}
		if n < 0 || n > 100 {
			return nil, fmt.Errorf("score %d out of range 0..100", n)
		}
		out = append(out, n)
	}
	return out, nil
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		// Missing files are fine; godotenv never overrides variables already set.
		_ = godotenv.Load(path)
	}
}

func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", raw)
	}
	return d, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
