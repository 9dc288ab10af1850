package main

import (
	"libdash/config"
	"libdash/di"
	"libdash/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.Run()
}
