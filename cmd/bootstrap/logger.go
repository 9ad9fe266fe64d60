package bootstrap

import (
	"log/slog"
	"strings"

	"office-hours/internal/handler/middleware"
	"office-hours/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewZapLogger,
	),
)

// NewLogger is the application logger used by every layer.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg).GetSlogLogger()
}

// NewZapLogger only backs fx's own lifecycle events.
func NewZapLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if gin.Mode() != gin.ReleaseMode {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func NewFxEventLogger(z *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: z.Named("fx")}
}
