package di

import (
	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
	"github.com/fahmi-a-r/typo-corrector/pkg/corrector"
	correctorHttp "github.com/fahmi-a-r/typo-corrector/pkg/http"
	"github.com/fahmi-a-r/typo-corrector/pkg/http/http-router/controllers"
	"github.com/fahmi-a-r/typo-corrector/pkg/http/usecases"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewCorrector(tree *bktree.BKTree, log *zap.Logger) usecases.Corrector {
	return corrector.New(tree, log)
}

func NewCorrectorService(log *zap.Logger, c usecases.Corrector) controllers.CorrectorService {
	viper.SetDefault("API_WORKERS", 8)

	return usecases.New(log, c, viper.GetInt("API_WORKERS"))
}

func NewCorrectorAPIServer(log *zap.Logger,
	correctorService controllers.CorrectorService) *correctorHttp.Server {
	return correctorHttp.NewServer(log, correctorService)
}
