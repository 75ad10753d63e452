package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NOOPLogger discards everything. It is the default for components that
// were not given a logger.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a logger writing to stderr, keeping stdout free for the
// interactive console. Local environments get the human readable
// development encoder, everything else gets JSON.
func New(appEnv, level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if appEnv == "" || appEnv == "local" {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.Sugar().With("app_env", appEnv), nil
}
