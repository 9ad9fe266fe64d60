package bootstrap

import (
	"office-hours/internal/pkg/config"
	"office-hours/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(func(cfg config.JWTConfig) *jwt.Service {
		return jwt.NewService(cfg.Secret, cfg.Duration)
	}),
)
