package zap

import (
	"github.com/fahmi-a-r/typo-corrector/pkg/logger/config"

	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(cfg config.Configuration) (*uberzap.Logger, error) {
	zapConfig := uberzap.NewProductionConfig()
	zapConfig.Level = uberzap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)

	return zapConfig.Build()
}
