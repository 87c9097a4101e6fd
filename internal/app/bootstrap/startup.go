// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	otpstore "github.com/eventnethq/eventnet/internal/app/store/otp"
	userstore "github.com/eventnethq/eventnet/internal/app/store/users"
	"github.com/eventnethq/eventnet/internal/app/system/tasks"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// EventNet starts the periodic maintenance jobs here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	otps := otpstore.New(deps.MongoDatabase, appCfg.OTPExpiry)
	users := userstore.New(deps.MongoDatabase)

	deps.Tasks.Start(
		tasks.OTPCleanupJob(otps, logger),
		tasks.StaleRegistrationsJob(users, otps, logger, appCfg.StaleRegistrationTTL),
	)
	return nil
}
