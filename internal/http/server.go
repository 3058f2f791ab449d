package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type Server struct {
	log  *logger.Logger
	srv  *http.Server
	addr string
}

func NewServer(log *logger.Logger, engine *gin.Engine, addr string) *Server {
	return &Server{
		log:  log.With("component", "Server"),
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.log.Info("HTTP server listening", "addr", s.addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("HTTP server shutting down")
	return s.srv.Shutdown(ctx)
}
