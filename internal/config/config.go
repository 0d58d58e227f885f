package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Media folders, flat directories read at request time
	PhotosDir string `env:"PHOTOS_DIR" envDefault:"Photo"`
	VideosDir string `env:"VIDEOS_DIR" envDefault:"Video"`

	// Channel the bot is associated with. Parsed but not read by any
	// handler; kept for parity with the deployed configuration.
	ChannelID string `env:"CHANNEL_ID"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
