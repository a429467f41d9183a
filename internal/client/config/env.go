package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not override them).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HSREPLAY_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("HSREPLAY_UPLOAD_REQUEST_URL"); v != "" {
		cfg.UploadRequestURL = v
	}
	if v := os.Getenv("HSREPLAY_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TRACKER_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TRACKER_TEST_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TestData = b
		}
	}
}
