package main

import (
	"context"
	"os"
	"os/signal"

	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/config"
	"bidding-coach/internal/logging"
	"bidding-coach/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadConsoleLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	defer logging.Close()

	consoleCfg, err := config.LoadConsole()
	if err != nil {
		log.Fatal().Err(err).Msg("load console config failed")
	}
	storeCfg, err := config.LoadStore()
	if err != nil {
		log.Fatal().Err(err).Msg("load store config failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.Open(ctx, storeCfg)
	if err != nil {
		log.Fatal().Err(err).Str("mode", storeCfg.Mode).Msg("store init failed")
	}
	defer st.Close()

	c := newConsole(ctx, os.Stdin, os.Stdout, appsession.NewService(st))
	if err := c.Run(consoleCfg); err != nil {
		log.Error().Err(err).Msg("console stopped")
	}
}
