package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/asaraswat/ecotrackify/internal/flagx"
	"github.com/asaraswat/ecotrackify/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c/-config flags. Missing flag means no JSON is loaded. Read or
// unmarshal errors panic; intended usage is defaults -> parseJson ->
// parseFlags, later stages overriding earlier ones.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
