package metric_di

import (
	"github.com/fahmi-a-r/typo-corrector/pkg"
	"github.com/fahmi-a-r/typo-corrector/pkg/metric"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New picks the active metric. Without a metric config the uniform
// Levenshtein metric is used; with one, a failure to build the weighted
// metric is fatal because the operator asked for it explicitly.
func New(log *zap.Logger) (metric.Metric, error) {
	configPath := viper.GetString("METRIC_CONFIG")
	if configPath == "" {
		log.Info("default Levenshtein metric will be used")
		return metric.NewLevenshtein(), nil
	}

	log.Info("parsing metric config file", zap.String("path", configPath))
	weighted, err := metric.NewWeightedLevenshteinFromFile(configPath)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput,
			"error creating weighted levenshtein metric from file %q: %v", configPath, err)
	}
	return weighted, nil
}
