package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov/go-web-skeleton/internal/auth"
	"github.com/akarpov/go-web-skeleton/internal/config"
	"github.com/akarpov/go-web-skeleton/internal/environment"
	httphandler "github.com/akarpov/go-web-skeleton/internal/handler/http"
	"github.com/akarpov/go-web-skeleton/internal/logger"
	"github.com/akarpov/go-web-skeleton/internal/server"
	"github.com/akarpov/go-web-skeleton/internal/startup"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// requiredConfigKeys is the deployment contract of this binary: startup
// aborts when any of these resolve to a blank value. Adopters extend the
// list with the keys their own handlers cannot run without.
var requiredConfigKeys = []string{
	"server.address",
	"log.level",
}

func main() {
	printBuildInfo()

	log := logger.NewBuffered("go-web-skeleton")
	env := environment.Resolve()

	cfg, err := config.GetStructuredConfig(env)
	if err != nil {
		fatal(log, err, "error getting configs")
	}
	log.SetLevel(cfg.LogLevel())
	log.Debug().Any("config", cfg).Msg("received configs")

	validator := startup.NewValidator(log).Require(requiredConfigKeys...)
	if err = validator.Validate(cfg, env); err != nil {
		fatal(log, err, "startup validation failed")
	}

	tokens := auth.NewTokenManager(cfg.Auth)
	handler := httphandler.NewHandler(cfg, env, tokens, log)

	p, err := handler.Init(registerRoutes)
	if err != nil {
		fatal(log, err, "error assembling request pipeline")
	}
	log.Info().Strs("stages", p.Stages()).Msg("request pipeline assembled")

	srv, err := server.NewServer(p, cfg.Server, log)
	if err != nil {
		fatal(log, err, "error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// reload the log level when the JSON config file changes
	if cfg.JSONFilePath != "" {
		go func() {
			watchErr := config.Watch(ctx, cfg.JSONFilePath, log, func(next *config.StructuredConfig) {
				if next.Log.Level == "" {
					return
				}
				log.SetLevel(next.LogLevel())
				log.Info().Str("level", next.Log.Level).Msg("log level reloaded")
			})
			if watchErr != nil {
				log.Error().Err(watchErr).Msg("config watcher stopped")
			}
		}()
	}

	if err = srv.Run(ctx); err != nil {
		fatal(log, err, "error running server")
	}
}

// registerRoutes installs the routes served behind the default pipeline.
// The starter ships a single version endpoint; adopters replace or extend
// this with their own API.
func registerRoutes(r chi.Router) {
	r.Get("/api/version", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "version=%s commit=%s built=%s\n", buildVersion, buildCommit, buildDate)
	})
}

// fatal reports a startup error, flushes the log sink and exits non-zero.
// log.Fatal is deliberately avoided: os.Exit inside zerolog would skip
// the buffered sink flush.
func fatal(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	_ = log.Close()
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
