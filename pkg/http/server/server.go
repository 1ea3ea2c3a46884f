package http_server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	Address   string
	Port      int
	Timeout   time.Duration
	MaxQueued int64
}

type Server struct {
	srv *http.Server
}

func New(handler http.Handler, config Config) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
			Handler:      handler,
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			IdleTimeout:  time.Minute,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. A bind
// failure surfaces immediately.
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)
	go func() {
		errC <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
