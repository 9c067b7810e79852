package main

import (
	"intervuex/config"
	"intervuex/di"
	"intervuex/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
