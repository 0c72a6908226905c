package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/personregistry/pkg/app"
	"github.com/ghuser/personregistry/pkg/cache"
	"github.com/ghuser/personregistry/pkg/config"
	"github.com/ghuser/personregistry/pkg/database"
	"github.com/ghuser/personregistry/pkg/events"
	"github.com/ghuser/personregistry/pkg/logger"
	"github.com/ghuser/personregistry/pkg/telemetry"
	personEvents "github.com/ghuser/personregistry/services/person/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all person event handlers. person.created and
// person.updated both warm the read-model cache; inactivation rides
// person.updated with active=false, so cached entries stay current.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{personEvents.TopicPersonCreated, personEvents.TopicPersonUpdated}
	handler := handlePersonEvent(a)

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handlePersonEvent returns a handler that warms the Redis read-model
// cache from the event snapshot. Handlers must be idempotent: EventBus
// retries up to 3× on failure, and writing the same snapshot twice is
// harmless.
func handlePersonEvent(a *app.Application) func(context.Context, *message.Message) error {
	personCache := cache.NewPersonCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt personEvents.PersonEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		p := evt.Person
		if err := personCache.Set(ctx, &cache.CachedPerson{
			ID:        p.ID,
			Name:      p.Name,
			LastName:  p.LastName,
			Document:  p.Document,
			BirthDate: p.BirthDate,
			Address:   p.Address,
			Phones:    p.Phones,
			Emails:    p.Emails,
			Active:    p.Active,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for person event",
				"person_id", p.ID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"person_id", p.ID, "event_id", evt.EventID)
		}

		return nil
	}
}
