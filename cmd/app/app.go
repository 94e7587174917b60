package app

import (
	log "github.com/sirupsen/logrus"

	"socialdesk/internal/config"
	"socialdesk/internal/database"
	"socialdesk/internal/notification"
	"socialdesk/internal/ratelimit"
	"socialdesk/internal/repository"
	"socialdesk/internal/service"
	"socialdesk/internal/storage"
)

// App wires the infrastructure: database, object storage, notifier, rate
// limiter, repositories and services.
func App(cfg *config.Config) (*database.DB, *service.Service, ratelimit.Limiter) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize MinIO")
	}

	repo := repository.NewRepository(db.DB)
	notifier := notification.NewNotifier(cfg)
	limiter := ratelimit.NewLimiter(cfg)

	services := service.NewService(repo, cfg, store, notifier)

	return db, services, limiter
}
