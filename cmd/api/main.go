package main

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"socialdesk/cmd/app"
	"socialdesk/internal/config"
	handlers "socialdesk/internal/handler"
	"socialdesk/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, services, limiter := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, limiter, cfg)
	router := handler.NewRouter()

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.WithFields(log.Fields{
		"addr":     addr,
		"database": cfg.DB.Name,
	}).Info("server started")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
