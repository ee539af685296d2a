package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/facturadash/facturadash/internal/flagx"
	"github.com/facturadash/facturadash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CachePath      string         `json:"cache_path"`
	LogLevel       string         `json:"log_level"`
	StartAtLogin   bool           `json:"start_at_login"`
}

// parseJson overlays cfg with values loaded from the JSON file selected via
// -c or -config. When no file is given the function is a no-op. Read or
// unmarshal errors panic; configuration is unusable at that point.
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
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.StartAtLogin {
		cfg.StartAtLogin = true
	}
}
