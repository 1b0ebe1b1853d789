package main

import (
	"capsim"
	"capsim/app"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 Web 服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := c.cfg.Generator()
			if err != nil {
				return err
			}
			if c.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			srv := app.NewServer(capsim.NewSimulator(gen), c.log)
			return srv.Run(ctx, c.cfg.Listen)
		},
	}
	cmd.Flags().StringVar(&c.cfg.Listen, "listen", c.cfg.Listen, "HTTP 监听地址")
	return cmd
}
