package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/iapapers/internal/flagx"
	"github.com/dmitrijs2005/iapapers/internal/timex"
)

// JsonConfig is the on-disk form of Config. Absent keys leave the current
// value alone; durations accept "3s" or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	LedgerPath          *string         `json:"ledger_path"`
	DownloadDir         *string         `json:"download_dir"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config or the
// CONFIG environment variable. It panics on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.LedgerPath != nil {
		cfg.LedgerPath = *jc.LedgerPath
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
