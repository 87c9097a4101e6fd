// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/eventnethq/eventnet/internal/app/system/tasks"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Tasks runs the periodic maintenance jobs; started in Startup,
	// stopped in Shutdown.
	Tasks *tasks.Runner
}
