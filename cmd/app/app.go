package main

import (
	"os"

	"github.com/meditrack-app/go-backend/internal/app"
	config "github.com/meditrack-app/go-backend/internal/cfg"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

//	@title			MediTrack API
//	@version		1.0
//	@description	Каталог аптечных товаров и поиск ближайших аптек.
//	@BasePath		/api

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
