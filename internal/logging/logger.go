package logging

import (
	"fmt"

	"github.com/Behyna/sms-services/messagecloud/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger at the configured level. When a log
// file is configured, entries at warn and above are also appended to it.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}

	if cfg.File == "" {
		return logger, nil
	}

	sink, _, err := zap.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", cfg.File, err)
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zc.EncoderConfig),
		sink,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.WarnLevel && level.Enabled(l)
		}),
	)

	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), nil
}

// NewFromConfig adapts New for fx providers.
func NewFromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.Log)
}
