// Package server boots the LocalConnect SA backend: config, database,
// cache, blob storage, the per-session store manager and both the HTTP
// and gRPC ops listeners.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/routes"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/cache"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/database"
	grpcsrv "github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/grpc"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/router"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/schedule"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/workerpool"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/ws"
)

// Start brings the whole service up and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		// Redis is optional: reads fall through to the database.
		logger.Warn("server: cache unavailable", "error", err)
	}
	storage.Connect()

	stores := store.NewManager(config.SessionSlot(), storage.Default())
	pool := workerpool.New(4)
	hub := ws.NewHub()
	go hub.Run()

	registerListeners()

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	registerScheduledTasks()
	schedule.Start(schedCtx)

	r := router.New()
	routes.RegisterAPI(r, routes.Deps{Stores: stores, Pool: pool, Hub: hub})

	grpcServer, lis, err := grpcsrv.Start(config.GRPCPort())
	if err != nil {
		return err
	}
	logger.Info("server: grpc ops listening", "addr", lis.Addr().String())

	httpServer := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server: http listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server: http shutdown", "error", err)
	}

	grpcsrv.Stop(grpcServer)
	pool.Shutdown()
	return nil
}
