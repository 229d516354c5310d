package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Telegram struct {
		Token string `env:"TOKEN,required"`

		// Пустой список - бот доступен всем
		AllowedUserIDs []int64 `env:"ALLOWED_USER_IDS"`

		Webhook struct {
			URL  string `env:"URL"`
			Port int    `env:"PORT" envDefault:"3000"`
		} `envPrefix:"WEBHOOK_"`
	} `envPrefix:"TELEGRAM_"`

	Database struct {
		Path        string        `env:"PATH" envDefault:"./data/tasks.db"`
		BusyTimeout time.Duration `env:"BUSY_TIMEOUT" envDefault:"5s"`
	} `envPrefix:"DB_"`
}

// New читает .env (если он есть) и переменные окружения процесса
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Parse собирает конфиг из переданного окружения вместо окружения процесса
func Parse(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// UsesWebhook true, когда бот должен принимать обновления через вебхук
func (c *Config) UsesWebhook() bool {
	return !c.Debug && c.Telegram.Webhook.URL != ""
}
