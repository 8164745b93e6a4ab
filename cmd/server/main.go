package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"barkery/internal/config"
	"barkery/internal/db"
	"barkery/internal/db/mock"
	applog "barkery/internal/log"
	"barkery/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	if err := applog.SetLevel(cfg.Log.Level); err != nil {
		log.Fatalf("configure log level: %v", err)
	}
	if err := applog.SetFormat(cfg.Log.Format); err != nil {
		log.Fatalf("configure log format: %v", err)
	}

	database := db.Get()
	if cfg.Database.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		database, err = mock.New(ctx)
		if err != nil {
			log.Fatalf("initialise mock database: %v", err)
		}
	} else {
		database, err = db.Configure(cfg.Database)
		if err != nil {
			log.Fatalf("configure database: %v", err)
		}
	}

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database: database,
		Batch: server.BatchConfig{
			PackSizeGrams: cfg.Batch.PackSizeGrams,
			WasteBuffer:   cfg.Batch.WasteBuffer,
			CookEpoch:     cfg.Batch.CookEpoch,
		},
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server encountered an error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
