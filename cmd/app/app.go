package app

import (
	"log"

	"realtyshopee/internal/config"
	"realtyshopee/internal/database"
	"realtyshopee/internal/mailer"
	"realtyshopee/internal/repository"
	"realtyshopee/internal/service"
)

// App wires the store, repositories and services. A failed database
// connection is fatal: the process must not accept traffic without it.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database Connection Error: %v", err)
	}

	repo := repository.NewRepository(db)

	mail := mailer.NewSMTPMailer(cfg.SMTP)

	services := service.NewService(repo, mail, cfg)

	return db, repo, services
}
