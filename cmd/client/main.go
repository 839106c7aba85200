package main

import (
	"context"
	"log"
	"os"

	"github.com/asaraswat/ecotrackify/internal/buildinfo"
	"github.com/asaraswat/ecotrackify/internal/client/cli"
	"github.com/asaraswat/ecotrackify/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
