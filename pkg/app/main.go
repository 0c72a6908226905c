package app

import (
	"github.com/ghuser/personregistry/pkg/cache"
	"github.com/ghuser/personregistry/pkg/database"
	"github.com/ghuser/personregistry/pkg/events"
	"github.com/ghuser/personregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every service's route registration during server init.
//
// app.Logger is backed by a trace-aware handler: use the context methods
// and trace_id, span_id and request_id are injected automatically.
//
//	app.Logger.InfoContext(ctx, "persisting person", "person_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
