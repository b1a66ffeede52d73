package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"golang.org/x/sync/errgroup"

	"github.com/momo-integration/momo-payments.api/config"
	"github.com/momo-integration/momo-payments.api/handlers"
)

func main() {
	log.Namespace = "momo-payments.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		os.Exit(1)
	}

	if err = cfg.Validate(); err != nil {
		log.Error(fmt.Errorf("invalid config: %s. Exiting", err))
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	chain := alice.New(log.Handler, handlers.CORS(*cfg))
	server := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: chain.Then(router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting momo-payments.api service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting momo-payments.api service")
}
