package config

import (
	"flag"
	"os"
	"time"

	"github.com/shelterdesk/portal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the main API
//	-n string   websocket URL of the notification service
//	-f string   base URL of the file service
//	-t int      request timeout in seconds
//	-p int      default page size for list views
//
// Args are filtered through flagx.FilterArgs so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-f", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the main API")
	fs.StringVar(&cfg.NotificationWSURL, "n", cfg.NotificationWSURL, "websocket URL of the notification service")
	fs.StringVar(&cfg.FileServiceBaseURL, "f", cfg.FileServiceBaseURL, "base URL of the file service")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	pageSize := fs.Int("p", cfg.PageSize, "default page size for list views")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
}
