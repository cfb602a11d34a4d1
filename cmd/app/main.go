package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"tablebook/config"
	"tablebook/di"
	"tablebook/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeCLI()
	if err := app.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
