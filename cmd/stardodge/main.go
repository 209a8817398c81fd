package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stardodge/api"
	"stardodge/config"
	"stardodge/logging"
	"stardodge/room"
	"stardodge/session"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to TOML tuning file")
	flag.Parse()

	boot := logging.New("info")
	if err := config.InitEnv(); err != nil {
		boot.Fatal().Err(err).Msg("environment")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("config")
	}
	log := logging.New(cfg.LogLevel)

	sessions := session.NewManager(log)
	defer sessions.Close()
	opts := session.Options{
		TickHz:      cfg.Runtime.TickHz,
		PalettePath: cfg.Runtime.Palette,
		SheetPath:   cfg.Runtime.Sheet,
		Seed:        cfg.Runtime.Seed,
	}
	// Boot once up front so bad asset paths fail before we listen.
	if _, err := sessions.Ensure(opts); err != nil {
		log.Fatal().Err(err).Msg("session boot")
	}

	rooms := room.NewManager(sessions, opts, log)
	defer rooms.StopAll()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(rooms, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown")
	}
}
