package main

import (
	"capsim/config"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cli 命令行共享状态
type cli struct {
	out     io.Writer
	cfg     config.Config
	cfgPath string
	log     zerolog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, cfg: config.DefaultConfig(), log: config.Logger("info")}
	root := &cobra.Command{
		Use:           "capsim",
		Short:         "平行板电容 RC 电路仿真",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "配置文件路径 (默认 $HOME/.capsim/config.toml)")
	pf.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "日志级别 debug|info|warn|error")
	pf.Float64Var(&c.cfg.TimeMax, "time-max", c.cfg.TimeMax, "仿真时长(s)")
	pf.IntVar(&c.cfg.Samples, "samples", c.cfg.Samples, "采样点数")
	pf.BoolVar(&c.cfg.ExactCharge, "exact-charge", c.cfg.ExactCharge, "充电电荷使用 Q=C·V₀·(1−e^(−t/τ))")

	root.AddCommand(
		newCapacitanceCmd(c),
		newSimulateCmd(c),
		newServeCmd(c),
	)
	return root
}

// loadConfig 默认值 < 配置文件 < 环境变量 < 命令行参数
func (c *cli) loadConfig(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}
	if cfgFile != "" && config.FileExists(cfgFile) {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	} else if c.cfgPath != "" {
		return fmt.Errorf("配置文件不存在: %s", c.cfgPath)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	if err := config.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	c.log = config.Logger(c.cfg.LogLevel)
	c.log.Debug().Interface("config", c.cfg).Msg("配置")
	return nil
}
