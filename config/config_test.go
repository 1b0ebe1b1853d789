package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5.0, cfg.TimeMax)
	assert.Equal(t, 500, cfg.Samples)
	assert.False(t, cfg.ExactCharge)

	gen, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, 500, gen.Samples())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*Config)
		wantErr bool
	}{
		{"默认", func(*Config) {}, false},
		{"时长为零", func(c *Config) { c.TimeMax = 0 }, true},
		{"采样点过少", func(c *Config) { c.Samples = 1 }, true},
		{"日志级别无效", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"日志级别大写", func(c *Config) { c.LogLevel = " DEBUG " }, false},
		{"监听地址为空", func(c *Config) { c.Listen = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.Listen)
		})
	}
}

func TestApplyFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
time_max = 0.01
samples = 5000
exact_charge = true
listen = "127.0.0.1:9000"
log_level = "debug"
`), 0o644))
	require.True(t, FileExists(path))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Samples = 42
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{"samples": true}))
	assert.Equal(t, 0.01, cfg.TimeMax)
	assert.Equal(t, 42, cfg.Samples, "命令行参数优先")
	assert.True(t, cfg.ExactCharge)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("CAPSIM_TIME_MAX", "2.5")
	t.Setenv("CAPSIM_SAMPLES", "1000")
	t.Setenv("CAPSIM_EXACT_CHARGE", "true")
	t.Setenv("CAPSIM_LISTEN", ":9999")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{"listen": true}))
	assert.Equal(t, 2.5, cfg.TimeMax)
	assert.Equal(t, 1000, cfg.Samples)
	assert.True(t, cfg.ExactCharge)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyEnvConfigInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"非数字", "CAPSIM_SAMPLES", "many"},
		{"采样点为负", "CAPSIM_SAMPLES", "-3"},
		{"时长为负", "CAPSIM_TIME_MAX", "-1"},
		{"时长为零", "CAPSIM_TIME_MAX", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := DefaultConfig()
			require.Error(t, ApplyEnvConfig(&cfg, map[string]bool{}))
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}

	// 命令行参数覆盖时仍报告非法值
	t.Setenv("CAPSIM_TIME_MAX", "-1")
	cfg := DefaultConfig()
	err := ApplyEnvConfig(&cfg, map[string]bool{"time-max": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time-max=-1")
}

func TestApplyFileConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("time_max = -2.5\nsamples = 0\n"), 0o644))
	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	err = ApplyFileConfig(&cfg, fc, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "配置文件")
	assert.Contains(t, err.Error(), "time-max")
	assert.Equal(t, DefaultConfig().TimeMax, cfg.TimeMax)
	assert.Equal(t, DefaultConfig().Samples, cfg.Samples)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CAPSIM_LOG_LEVEL=warn\n"), 0o644))
	t.Setenv("CAPSIM_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("CAPSIM_LOG_LEVEL"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, nil))
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	fallback := NewLogger(&buf, "nonsense")
	fallback.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}
