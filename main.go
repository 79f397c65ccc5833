package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "tourtravel/internal/config"
	"tourtravel/internal/gateway"
	router "tourtravel/internal/http"
	"tourtravel/internal/http/handlers"
	"tourtravel/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	log := logging.New(env.LogLevel, env.LogFormat, os.Stdout)

	db, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		log.Fatal().Err(err).Str("host", env.DB.Host).Str("db", env.DB.Name).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Str("host", env.DB.Host).Str("db", env.DB.Name).Msg("database connected")

	if env.Gateway.StoreID == "" || env.Gateway.StorePasswd == "" {
		log.Warn().Msg("SSLCZ_STORE_ID / SSLCZ_STORE_PASSWD not set, payment initiation will fail")
	}

	r := router.NewRouter(&handlers.Handler{
		DB:      db,
		Env:     env,
		Gateway: gateway.NewClient(env.Gateway, nil),
		Log:     log,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.Gateway.Timeout + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.AppAddr).Bool("strict_transitions", env.StrictTransitions).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}

	log.Info().Msg("server stopped")
}
