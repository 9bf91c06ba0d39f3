package main

import (
	"os"

	"github.com/cartcraft/backend/internal/app"
	config "github.com/cartcraft/backend/internal/cfg"
	"github.com/cartcraft/backend/pkg/logger"
)

//	@title			CartCraft API
//	@version		1.0
//	@description	Демо-бэкенд витрины: каталог товаров и размещение заказов.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
