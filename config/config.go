// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `default:"development"`
	Port        string `default:"8080"`

	DatabaseURL string `split_words:"true" required:"true"`

	Redis RedisConfig

	// JWTSecret signs the storefront session tokens that scope carts.
	JWTSecret   string        `split_words:"true" required:"true"`
	AdminAPIKey string        `split_words:"true" required:"true"`
	SessionTTL  time.Duration `split_words:"true" default:"720h"`
	CartTTL     time.Duration `split_words:"true" default:"720h"`

	ViaCEPBaseURL   string `envconfig:"VIACEP_BASE_URL" default:"https://viacep.com.br"`
	WhatsAppBaseURL string `envconfig:"WHATSAPP_BASE_URL" default:"https://wa.me"`

	UploadsDir string `split_words:"true" default:"./uploads"`
	PublicURL  string `split_words:"true" default:"http://localhost:8080"`

	// BackupDir enables the nightly uploads backup when set.
	BackupDir       string        `split_words:"true"`
	BackupRetention time.Duration `split_words:"true" default:"96h"`
}

type RedisConfig struct {
	URL          string `default:"redis://localhost:6379"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

// Load reads a local .env if present, then populates Config from the
// environment. Variables are prefixed APP_, e.g. APP_DATABASE_URL.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("app", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
