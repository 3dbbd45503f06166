package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all startup configuration. Every value comes from the
// environment (optionally seeded from a .env file); nothing is hard-coded.
type Config struct {
	MongoURI      string        `env:"MONGODB_URI"`
	DBName        string        `env:"DB_NAME" env-default:"muaythai"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"1h"`
	Port          string        `env:"PORT" env-default:"3001"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN" env-default:"http://localhost:3000"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"24h"`
	ResendAPIKey  string        `env:"RESEND_API_KEY"`
	FromEmail     string        `env:"FROM_EMAIL"`
}

// MustLoad reads configuration from the environment and exits the process
// when a required value is missing.
func MustLoad() *Config {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %v", err)
	}

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}
	return &cfg
}
