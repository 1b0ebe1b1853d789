package config

import (
	"capsim/types"
	"capsim/waveform"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultListen HTTP 服务默认监听地址
const DefaultListen = ":8080"

// Config 命令行与服务配置
type Config struct {
	TimeMax     float64 // 仿真时长(s)
	Samples     int     // 采样点数
	ExactCharge bool    // 充电电荷使用物理曲线
	Listen      string  // HTTP 监听地址
	LogLevel    string  // 日志级别
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		TimeMax:  types.DefaultTimeMax,
		Samples:  types.DefaultSamples,
		Listen:   DefaultListen,
		LogLevel: "info",
	}
}

// Validate 检查配置
func (c *Config) Validate() error {
	if math.IsNaN(c.TimeMax) || math.IsInf(c.TimeMax, 0) || c.TimeMax <= 0 {
		return fmt.Errorf("time-max 必须为正的有限值: %v", c.TimeMax)
	}
	if c.Samples < types.MinSamples {
		return fmt.Errorf("samples 至少为 %d: %d", types.MinSamples, c.Samples)
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

// Generator 由配置创建波形生成器
func (c Config) Generator() (*waveform.Generator, error) {
	return waveform.NewGenerator(
		waveform.WithTimeMax(c.TimeMax),
		waveform.WithSamples(c.Samples),
		waveform.WithExactChargingCharge(c.ExactCharge),
	)
}

// configSetter 按来源(配置文件、环境变量)写入配置。
// 已显式设置的命令行参数不会被覆盖；来源中出现的非法值记为 err，不会被静默丢弃。
type configSetter struct {
	source  string
	changed map[string]bool
	err     error
}

func newConfigSetter(source string, changed map[string]bool) *configSetter {
	return &configSetter{source: source, changed: changed}
}

// fail 只保留第一个错误
func (s *configSetter) fail(key string, value any, reason string) {
	if s.err == nil {
		s.err = fmt.Errorf("%s: %s=%v %s", s.source, key, value, reason)
	}
}

func (s *configSetter) setString(key, value string, dst *string) {
	if value == "" || s.changed[key] {
		return
	}
	*dst = value
}

// setPositiveInt 未设置时为 nil；设置了但不为正时报错，即便命令行参数会覆盖它
func (s *configSetter) setPositiveInt(key string, value *int, dst *int) {
	if value == nil {
		return
	}
	if *value <= 0 {
		s.fail(key, *value, "必须为正")
		return
	}
	if !s.changed[key] {
		*dst = *value
	}
}

// setPositiveFloat 同 setPositiveInt，另外拒绝 NaN 与 Inf
func (s *configSetter) setPositiveFloat(key string, value *float64, dst *float64) {
	if value == nil {
		return
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) || *value <= 0 {
		s.fail(key, *value, "必须为正的有限值")
		return
	}
	if !s.changed[key] {
		*dst = *value
	}
}

func (s *configSetter) setBool(key string, value *bool, dst *bool) {
	if value == nil || s.changed[key] {
		return
	}
	*dst = *value
}
