package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cartcraft/backend/internal/cart"
	"github.com/cartcraft/backend/internal/storefront"
	"github.com/cartcraft/backend/pkg/logger"
)

func main() {
	var (
		baseURL  = flag.String("base-url", "http://localhost:8000/api/v1", "адрес API бэкенда")
		cartPath = flag.String("cart-file", defaultCartPath(), "путь к файлу корзины")
		timeout  = flag.Duration("timeout", 10*time.Second, "таймаут HTTP-запросов")
	)
	flag.Parse()

	log := logger.NewSlogLogger()

	if err := os.MkdirAll(filepath.Dir(*cartPath), 0o755); err != nil {
		log.Warnf("Failed to create cart directory: %v", err)
	}

	client := storefront.NewClient(*baseURL, *timeout, log)
	store := cart.NewFileStore(*cartPath, log)
	app := storefront.NewApp(client, store, log, os.Stdout)

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultCartPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cartcraft-cart.json"
	}

	return filepath.Join(home, ".cartcraft", "cart.json")
}
