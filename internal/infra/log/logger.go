package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. mode "development" selects the console
// encoder with a debug default; any other mode logs JSON at info for
// production traffic. level overrides the default when it parses as a zap
// level ("debug", "info", "warn", "error").
func New(mode, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if mode == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		// one line per request; sampling would thin out the trail of
		// auth failures
		cfg.Sampling = nil
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
}

func Must(mode, level string) *zap.Logger {
	l, err := New(mode, level)
	if err != nil {
		panic(err)
	}
	return l
}
