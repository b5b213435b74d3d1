package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-scoped settings, read once at startup and
// treated as immutable afterwards.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	MongoURL       string   `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	DBName         string   `env:"DB_NAME" envDefault:"jrautos"`
	AdminSecret    string   `env:"ADMIN_SECRET,required,notEmpty"`
	ResendAPIKey   string   `env:"RESEND_API_KEY"`
	SenderEmail    string   `env:"SENDER_EMAIL" envDefault:"onboarding@resend.dev"`
	RecipientEmail string   `env:"RECIPIENT_EMAIL" envDefault:"jr.autos.queretaro@example.com"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads a .env file when one is present, then parses the environment.
// A missing .env file is not an error; system environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
