package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/handlers"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("namespace", "checkout.api.medlaunch.health").
		Logger()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring service")
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info().Str("bind_addr", cfg.BindAddr).Msg("starting checkout.api.medlaunch.health service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)
	if err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
