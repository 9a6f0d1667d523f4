package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"applicant-bot/internal/actions"
	"applicant-bot/internal/config"
	"applicant-bot/internal/scheduler"
	"applicant-bot/internal/telegram"
	"applicant-bot/internal/users"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	for _, dir := range []string{cfg.ManagerVideoDir, cfg.ApplicantVideoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("failed to ensure directory %s: %v", dir, err)
		}
	}

	var journal actions.Journal
	if cfg.ActionsFilePath != "" {
		j, err := actions.NewFileJournal(cfg.ActionsFilePath)
		if err != nil {
			log.Printf("failed to init action journal: %v", err)
		} else {
			journal = j
		}
	}

	var registry users.Registry
	if cfg.UsersFilePath != "" {
		r, err := users.NewFileRegistry(cfg.UsersFilePath)
		if err != nil {
			log.Printf("failed to init user registry: %v", err)
		} else {
			registry = r
		}
	}

	bot, err := telegram.New(cfg, journal, registry)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.AdminUserID != 0 {
		sched := scheduler.New()
		sched.SetReportFunction(bot.SendFunnelReport)
		if err := sched.Start(); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	log.Println("Telegram Bot for Candidates is running")
	bot.Start(context.Background())
}
