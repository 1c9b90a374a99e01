package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/shelterdesk/portal/internal/cli"
	"github.com/shelterdesk/portal/internal/config"
	"github.com/shelterdesk/portal/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
