package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/imalento/Arcane-Tracker/internal/flagx"
	"github.com/imalento/Arcane-Tracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	UploadRequestURL string         `json:"upload_request_url"`
	APIKey           string         `json:"api_key"`
	AppID            string         `json:"app_id"`
	AppVersion       string         `json:"app_version"`
	ClientBuild      int            `json:"client_build"`
	DatabasePath     string         `json:"database_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	TestData         bool           `json:"test_data"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c / -config flags. When no path is given the function is a
// no-op. Only non-zero JSON fields override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.UploadRequestURL != "" {
		cfg.UploadRequestURL = jc.UploadRequestURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.AppID != "" {
		cfg.AppID = jc.AppID
	}
	if jc.AppVersion != "" {
		cfg.AppVersion = jc.AppVersion
	}
	if jc.ClientBuild != 0 {
		cfg.ClientBuild = jc.ClientBuild
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.TestData {
		cfg.TestData = true
	}
}
