package app

import (
	"context"
	"strings"

	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
)

// ExecuteSessionSetTokenCommand stores the session token in the configuration file
// and verifies it against the server.
func ExecuteSessionSetTokenCommand(ctx context.Context, cfg *config.Config, token string) {
	if err := saveSessionToken(cfg, token); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.InfoKV(ctx, "Session token saved", "file", cfg.Filename)

	service, registry := newService(ctx, cfg)

	if user := service.AuthUser(); user != nil {
		logger.InfoKV(ctx, "Logged in", "wwuid", user.Wwuid)
	} else {
		logger.WarnKV(ctx, "The server did not accept the session token", "server", cfg.ServerURL)
	}

	finish(ctx, cfg, registry)
}

func saveSessionToken(cfg *config.Config, token string) error {
	cfg.SessionToken = strings.TrimSpace(token)

	return config.SaveConfig(cfg)
}
