package app

import (
	"capsim"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// shutdownTimeout 优雅关闭等待时间
const shutdownTimeout = 5 * time.Second

// Server 电容仿真 Web 服务
type Server struct {
	sim    *capsim.Simulator
	log    zerolog.Logger
	engine *gin.Engine
}

// NewServer 创建服务
func NewServer(sim *capsim.Simulator, log zerolog.Logger) *Server {
	s := &Server{sim: sim, log: log}
	s.engine = s.routes()
	return s
}

// Handler 路由
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(pageTemplate)
	r.GET("/", s.index)
	r.POST("/", s.submit)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.POST("/simulate", s.simulate)
	api.GET("/plot.png", s.plot)
	return r
}

// Run 启动服务，ctx 取消后关闭
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("HTTP 服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.log.Info().Msg("HTTP 服务关闭")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
