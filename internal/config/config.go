package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DatasetPath      string
	ClimateZonesPath string
	CitiesPath       string
	CountyZonesPath  string
	DatabaseURL      string
	MinPopulation    int
	RateLimitRPS     float64
	RateLimitBurst   int
	TLSCert          string
	TLSKey           string
	StaticDir        string
	LogLevel         string
}

// Load reads .env when present, then the environment. A missing .env is fine.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	str := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Addr:             str("ADDR", ":8080"),
		DatasetPath:      str("DATASET_PATH", "db/db.gob"),
		ClimateZonesPath: str("CLIMATE_ZONES_PATH", "db/climate_zones.json"),
		CitiesPath:       str("CITIES_PATH", "db/uscities.csv"),
		CountyZonesPath:  getenv("COUNTY_ZONES_PATH"),
		DatabaseURL:      getenv("DATABASE_URL"),
		TLSCert:          getenv("TLS_CERT"),
		TLSKey:           getenv("TLS_KEY"),
		StaticDir:        str("STATIC_DIR", "./static/main"),
		LogLevel:         str("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MinPopulation, err = strconv.Atoi(str("MIN_POPULATION", "100000")); err != nil {
		return Config{}, fmt.Errorf("MIN_POPULATION: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(str("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(str("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive")
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}
	return cfg, nil
}
