package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, sourced from the environment.
// OpenAIAPIKey is optional; without it the chat endpoint runs rule-based.
type Config struct {
	Port          int           `env:"PORT" envDefault:"8000"`
	MoveChance    float64       `env:"MOVE_CHANCE" envDefault:"0.3"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"10s"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and parses the environment
func Load() (Config, error) {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
