package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// EnableDebug lowers the level of every logger built by NewLogger,
// including ones already handed out.
func EnableDebug() {
	level.SetLevel(zapcore.DebugLevel)
}

func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	t, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}
