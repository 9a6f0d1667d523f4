package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// Storage
	ActionsFilePath string `env:"ACTIONS_FILE_PATH" envDefault:"data/user_actions.jsonl"`
	UsersFilePath   string `env:"USERS_FILE_PATH" envDefault:"data/applicant_users.json"`

	// Media
	ManagerVideoDir   string `env:"MANAGER_VIDEO_DIR" envDefault:"manager_video"`
	ApplicantVideoDir string `env:"APPLICANT_VIDEO_DIR" envDefault:"applicant_video"`
	BotType           string `env:"BOT_TYPE" envDefault:"applicant"`
	MaxVideoDuration  int    `env:"MAX_VIDEO_DURATION" envDefault:"90"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
