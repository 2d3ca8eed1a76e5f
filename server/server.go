/*
Package server implements the dicechat HTTP/WebSocket server: a chat room
renders messages through the dice package, logs them to storage, and fans
them out to every WebSocket client subscribed to the room.
*/
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rollforge/dicechat"
	"github.com/rollforge/dicechat/dicesync"
	"github.com/rollforge/dicechat/storage"
)

const defaultShutdownGrace = 5 * time.Second

// Run starts the server with the given Config and blocks until it receives
// an interrupt signal, then shuts down gracefully.
func Run(cfg Config) error {
	if cfg.ConfigPath != "" {
		fileCfg, err := LoadConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.merge(cfg)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":6436"
	}
	if cfg.ShutdownGrace == 0 {
		cfg.ShutdownGrace = defaultShutdownGrace
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug mode enabled")
	}

	if cfg.MaxRequestRolls != 0 {
		dice.MaxRequestRolls = cfg.MaxRequestRolls
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	metrics := NewMetrics()

	h := newHub(metrics)
	go h.run()

	d := &deps{
		store:   store,
		hub:     h,
		metrics: metrics,
		source:  dicesync.Wrap(dice.Source),
	}

	router := configureRouting(d, metrics, cfg)

	srv := &http.Server{
		Handler:      router,
		Addr:         cfg.Addr,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server fatal error")
		}
	}()
	log.Info().Str("address", srv.Addr).Msg("server started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	log.Info().Msg("interrupt received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newStore(cfg Config) (storage.Store, error) {
	if cfg.PostgresDSN == "" {
		return storage.NewMemStore(), nil
	}
	return storage.NewPgStore(context.Background(), cfg.PostgresDSN)
}
