package middleware

import (
	"log/slog"
	"slices"

	"office-hours/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Every route under /api needs a bearer token and a JSON body, so these are
// allowed whatever CORS_ALLOW_HEADERS says.
var requiredHeaders = []string{"Authorization", "Content-Type"}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := corsConfig(cfg)
	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}

// corsConfig maps our settings onto gin-contrib/cors. A "*" origin, or none at
// all, means any origin, and then credentials are off: browsers refuse the
// combination.
func corsConfig(cfg config.CORSConfig) cors.Config {
	headers := slices.Clone(cfg.AllowHeaders)
	for _, h := range requiredHeaders {
		if !slices.Contains(headers, h) {
			headers = append(headers, h)
		}
	}

	out := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		out.AllowAllOrigins = true
		out.AllowCredentials = false
	} else {
		out.AllowOrigins = cfg.AllowOrigins
	}
	return out
}
