package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio, tomada del entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Selección de almacenamiento: si hay DBDSN se usa Postgres; si no,
	// SQLite en SQLitePath; con SQLITE_PATH vacío queda todo en memoria.
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"assets.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Orígenes permitidos para CORS; el frontend corre en otro origen.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
