package main

import (
	"net/http"
	"os"
	"time"

	"jet-stamp/internal/platform/logger"
	"jet-stamp/internal/router"

	"github.com/joho/godotenv"
)

// @title Jet Stamp API
// @version 1.0
// @description API para emitir y verificar certificados de vacunación de mascotas.
// @BasePath /
func main() {
	_ = godotenv.Load() // .env opcional en dev

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
