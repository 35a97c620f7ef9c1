package config

import (
	"os"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with an optional
// .env file on top.
type Config struct {
	DataPath string
	LogPath  string
	LogLevel string
}

// Load reads .env when present, then the FILMSCOUT_* variables with defaults. A
// missing .env is normal; any other read problem is only worth a warning.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("skipping .env")
	}
	return Config{
		DataPath: getEnv("FILMSCOUT_DATA", "data/film-locations.csv"),
		LogPath:  getEnv("FILMSCOUT_LOG", ""),
		LogLevel: getEnv("FILMSCOUT_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
