package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/iapapers/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// registered here are taken from os.Args, so -c/-config can share the
// command line.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Papers API")
	fs.StringVar(&cfg.LedgerPath, "d", cfg.LedgerPath, "path of the local vote ledger database")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for downloaded files")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds, 0 = off)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
