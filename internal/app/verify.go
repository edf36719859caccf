package app

import (
	"context"
	"os"

	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
)

// ExecuteVerifyCommand checks the configured session and prints the logged in user.
func ExecuteVerifyCommand(ctx context.Context, cfg *config.Config) {
	// Construction already runs the verification.
	service, registry := newService(ctx, cfg)

	printUser(os.Stdout, service.AuthUser())

	finish(ctx, cfg, registry)
}
