package main

import (
	"gymroom/config"
	"gymroom/di"
	"gymroom/shared/logger"
	"gymroom/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
