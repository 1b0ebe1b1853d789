package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "CAPSIM"

// EnvConfig 环境变量(CAPSIM_*)，未设置的字段保持为空
type EnvConfig struct {
	TimeMax     *float64 `envconfig:"TIME_MAX"`
	Samples     *int     `envconfig:"SAMPLES"`
	ExactCharge *bool    `envconfig:"EXACT_CHARGE"`
	Listen      string   `envconfig:"LISTEN"`
	LogLevel    string   `envconfig:"LOG_LEVEL"`
}

// LoadDotEnv 加载 .env 文件，文件不存在时忽略
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnvConfig 应用环境变量，覆盖配置文件但不覆盖显式设置的命令行参数
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	s := newConfigSetter("环境变量 "+EnvPrefix, changed)
	s.setPositiveFloat("time-max", env.TimeMax, &cfg.TimeMax)
	s.setPositiveInt("samples", env.Samples, &cfg.Samples)
	s.setBool("exact-charge", env.ExactCharge, &cfg.ExactCharge)
	s.setString("listen", env.Listen, &cfg.Listen)
	s.setString("log-level", env.LogLevel, &cfg.LogLevel)
	return s.err
}
