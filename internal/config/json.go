package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shelterdesk/portal/internal/flagx"
	"github.com/shelterdesk/portal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL         string         `json:"api_base_url"`
	NotificationWSURL  string         `json:"notification_ws_url"`
	FileServiceBaseURL string         `json:"file_service_base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	PageSize           int            `json:"page_size"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent file path means no JSON stage. Empty fields
// in the file leave the current value in place.
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
	if jc.NotificationWSURL != "" {
		cfg.NotificationWSURL = jc.NotificationWSURL
	}
	if jc.FileServiceBaseURL != "" {
		cfg.FileServiceBaseURL = jc.FileServiceBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
}
