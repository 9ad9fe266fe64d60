package bootstrap

import (
	"office-hours/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections exposes the parts of config.Config that components take on
// their own. Anything that supplies a config.Config can include it.
var ConfigSections = fx.Provide(splitConfig)

type configSections struct {
	fx.Out

	JWT   config.JWTConfig
	Store config.StoreConfig
	Log   config.LogConfig
}

func splitConfig(cfg config.Config) configSections {
	return configSections{
		JWT:   cfg.JWT,
		Store: cfg.Store,
		Log:   cfg.Log,
	}
}
