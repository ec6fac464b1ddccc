package main

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/kbsync/minio-listener/internal/settings"
	"net"
	"net/http"
	"time"
)

type App struct {
	cfg *settings.Config
	srv *http.Server
}

func NewApp(cfg *settings.Config, mux *chi.Mux) App {
	srv := &http.Server{
		Addr:    cfg.ListenAddress(),
		Handler: mux,
	}

	return App{
		cfg: cfg,
		srv: srv,
	}
}

func (app App) Start() (err error) {
	// bind before handing off to the goroutine so a taken port fails startup
	listener, err := net.Listen("tcp", app.cfg.ListenAddress())
	if err != nil {
		return err
	}

	logger.Infof("Listening for bucket notifications on %s", app.cfg.ListenAddress())

	go func() {
		err := app.srv.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			logger.Errorf("Unable to serve: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return app.srv.Shutdown(ctx)
}
