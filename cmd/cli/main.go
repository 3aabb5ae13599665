package main

import (
	"context"
	"os"

	"github.com/librivault/librivault-cli/internal/buildinfo"
	"github.com/librivault/librivault-cli/internal/client/cli"
	"github.com/librivault/librivault-cli/internal/client/config"
	"github.com/librivault/librivault-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel)

	app := cli.NewApp(ctx, cfg, log)
	app.Run(ctx)

}
