package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}

	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.AnalyzerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.AnalyzerTimeout)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []int{45, 60, 72}, cfg.TrendFallback)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ANALYZER_BASE_URL", "http://analyzer:8000")
	t.Setenv("ANALYZER_TIMEOUT", "5s")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("TREND_FALLBACK", "10, 20")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "http://analyzer:8000", cfg.AnalyzerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.AnalyzerTimeout)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, []int{10, 20}, cfg.TrendFallback)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"TREND_FALLBACK":   "10,abc",
		"ANALYZER_TIMEOUT": "soon",
		"SESSION_TTL":      "-1m",
		"MAX_UPLOAD_BYTES": "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := fromViper(newViper())
			assert.Error(t, err)
		})
	}
}

func TestParseTrend(t *testing.T) {
	got, err := ParseTrend(" 1, 50 ,100")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 50, 100}, got)

	got, err = ParseTrend("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseTrend("101")
	assert.Error(t, err)
}

func TestNormalizeEnv(t *testing.T) {
	assert.Equal(t, "production", normalizeEnv("PROD"))
	assert.Equal(t, "staging", normalizeEnv("staging"))
	assert.Equal(t, "local", normalizeEnv(" local "))
	assert.Equal(t, "dev", normalizeEnv("whatever"))
}
