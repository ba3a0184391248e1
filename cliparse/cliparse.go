package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	APIBaseURL   string
	DatabaseType string
	DatabaseURL  string
	PageSize     int
}

// LoadEnvFile loads variables from path (usually ".env") without overriding
// ones already set. A missing file is not an error.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("betboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Local UI port")
	fs.StringVar(&cfg.APIBaseURL, "api", "", "Backend API base URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "State database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "State database URL")
	fs.IntVar(&cfg.PageSize, "size", 0, "Bets per page")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := intFromEnv("PORT", 3319)
		if err != nil {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080/api"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:betboard.db"
	}

	if cfg.PageSize == 0 {
		size, err := intFromEnv("PAGE_SIZE", 12)
		if err != nil {
			return Config{}, errors.New("invalid PAGE_SIZE env variable")
		}
		cfg.PageSize = size
	}
	if cfg.PageSize < 1 {
		return Config{}, errors.New("page size must be positive")
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
