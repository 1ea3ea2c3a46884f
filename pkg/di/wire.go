//go:build wireinject

//go:generate wire
package di

import (
	dictionary_di "github.com/fahmi-a-r/typo-corrector/pkg/di/dictionary"
	logger_di "github.com/fahmi-a-r/typo-corrector/pkg/di/logger"
	metric_di "github.com/fahmi-a-r/typo-corrector/pkg/di/metric"
	correctorHttp "github.com/fahmi-a-r/typo-corrector/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	logger_di.New,
	metric_di.New,
	dictionary_di.New,
)

var correctorSet = wire.NewSet(
	defaultSet,
	NewCorrector,
	NewCorrectorService,
	NewCorrectorAPIServer,
)

func InitializeCorrectorServer() (*correctorHttp.Server, func(), error) {

	panic(wire.Build(correctorSet))
}
