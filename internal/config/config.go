package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	InterpretBaseURL        string `env:"INTERPRET_BASE_URL" envDefault:"http://localhost:5678"`
	UseInterpreter          bool   `env:"USE_INTERPRETER" envDefault:"true"`
	InterpretTimeoutSeconds int    `env:"INTERPRET_TIMEOUT_SECONDS" envDefault:"60"`

	TestMode        bool   `env:"TEST_MODE" envDefault:"true"`
	CalculationsDir string `env:"CALCULATIONS_DIR" envDefault:"./calculations"`
	ReportsDir      string `env:"REPORTS_DIR" envDefault:"./reports"`

	RedisAddr              string `env:"REDIS_ADDR"`
	RedisPassword          string `env:"REDIS_PASSWORD"`
	RedisDB                int    `env:"REDIS_DB" envDefault:"0"`
	InterpretCacheTTLHours int    `env:"INTERPRET_CACHE_TTL_HOURS" envDefault:"24"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	APIClientID         string `env:"API_CLIENT_ID"`
	APIClientSecretHash string `env:"API_CLIENT_SECRET_HASH"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
