package dictionary_di

import (
	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
	"github.com/fahmi-a-r/typo-corrector/pkg/metric"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(log *zap.Logger, m metric.Metric) (*bktree.BKTree, error) {
	return bktree.NewFromFile(viper.GetString("DICTIONARY_PATH"), m, log)
}
