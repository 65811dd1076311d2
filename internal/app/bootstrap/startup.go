// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/bimaah/advisoryhub/internal/app/resources"
	"github.com/bimaah/advisoryhub/internal/app/system/tasks"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// consultationRetention is how long consultation records are kept,
// matching the published privacy policy.
const consultationRetention = 6 * 365 * 24 * time.Hour

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having live
// database connections and fully loaded configuration.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Note: Indexes are created in EnsureSchema via indexes.EnsureAll().

	if appCfg.AdminPasswordHash == "" && appCfg.AdminEmails == "" {
		logger.Warn("no admin credentials configured; the dashboard cannot be signed into")
	}

	// Start background task runner
	startTaskRunner(deps.MongoDatabase, logger)

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(db *mongo.Database, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.OAuthStateCleanupJob(db, logger))
	taskRunner.Register(tasks.ConsultationRetentionJob(db, logger, consultationRetention))

	taskRunner.Start()
}
