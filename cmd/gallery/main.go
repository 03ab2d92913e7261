package main

import (
	"context"
	"log"

	"github.com/MajhiMohit/fsd-16-project/internal/cli"
	"github.com/MajhiMohit/fsd-16-project/internal/config"
	"github.com/MajhiMohit/fsd-16-project/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
