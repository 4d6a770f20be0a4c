package main

import (
	"fmt"
	"log"

	"marseille-immobilier/internal/config"
	"marseille-immobilier/internal/database"
	"marseille-immobilier/internal/handlers"
	"marseille-immobilier/internal/mailer"
	"marseille-immobilier/internal/server"
	"marseille-immobilier/internal/services"
	"marseille-immobilier/internal/storage"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.AdminUsername, cfg.AdminPassword)

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store error: %v", err)
	}

	var mail mailer.Mailer = mailer.Disabled{}
	if cfg.SMTPHost != "" && cfg.MailTo != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	h := &handlers.Handlers{
		Auth:         services.NewAuthService(database.DB),
		Agencies:     services.NewAgencyService(database.DB, files),
		Contact:      services.NewContactService(database.DB, mail, cfg.MailTo),
		Translations: services.NewTranslationService(database.DB, cfg.DefaultLanguage),
		Carousel:     services.NewCarouselService(database.DB, files),
	}

	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
