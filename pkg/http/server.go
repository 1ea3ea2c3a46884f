package http

import (
	"context"

	http_router "github.com/fahmi-a-r/typo-corrector/pkg/http/http-router"
	"github.com/fahmi-a-r/typo-corrector/pkg/http/http-router/controllers"
	http_server "github.com/fahmi-a-r/typo-corrector/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	correctorService controllers.CorrectorService
}

func NewServer(log *zap.Logger, correctorService controllers.CorrectorService) *Server {
	return &Server{Log: log, correctorService: correctorService}
}

// Use runs the API until ctx is cancelled.
func (s *Server) Use(
	ctx context.Context,
) error {
	viper.SetDefault("API_ADDRESS", "0.0.0.0")

	viper.SetDefault("API_PORT", 9000)

	viper.SetDefault("API_TIMEOUT", "1000ms")

	viper.SetDefault("API_MAX_QUEUED", 1000)

	config := http_server.Config{
		Address:   viper.GetString("API_ADDRESS"),
		Port:      viper.GetInt("API_PORT"),
		Timeout:   viper.GetDuration("API_TIMEOUT"),
		MaxQueued: viper.GetInt64("API_MAX_QUEUED"),
	}

	server := http_router.NewAPI(s.Log)

	g := errgroup.Group{}

	g.Go(func() error {
		return server.Run(
			ctx, config, s.Log, s.correctorService,
		)
	})

	return g.Wait()

}
