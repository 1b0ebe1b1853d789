package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig TOML 配置文件
type FileConfig struct {
	TimeMax     *float64 `toml:"time_max"`
	Samples     *int     `toml:"samples"`
	ExactCharge *bool    `toml:"exact_charge"`
	Listen      string   `toml:"listen"`
	LogLevel    string   `toml:"log_level"`
}

// LoadFileConfig 读取 TOML 配置文件
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath 默认配置文件路径 ~/.capsim/config.toml
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".capsim", "config.toml")
	}
	return ""
}

// ApplyFileConfig 应用配置文件，changed 中的命令行参数优先
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter("配置文件", changed)
	s.setPositiveFloat("time-max", fc.TimeMax, &cfg.TimeMax)
	s.setPositiveInt("samples", fc.Samples, &cfg.Samples)
	s.setBool("exact-charge", fc.ExactCharge, &cfg.ExactCharge)
	s.setString("listen", fc.Listen, &cfg.Listen)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	return s.err
}

// FileExists 文件是否存在
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
