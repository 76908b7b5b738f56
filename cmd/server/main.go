package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kazhicho/internal/commons"
	"kazhicho/internal/config"
	"kazhicho/internal/domain"
	"kazhicho/internal/infrastructure/logger"
	"kazhicho/internal/infrastructure/mysql"
	"kazhicho/internal/location"
	"kazhicho/internal/menu"
	"kazhicho/internal/order"
	"kazhicho/internal/push"
	"kazhicho/internal/server"
	"kazhicho/internal/session"

	"go.uber.org/zap"
)

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("menu database connected")
	} else {
		zapLogger.Info("no menu database configured, serving the demo menu")
	}

	catalog, menuCtrl, err := menu.NewModule(context.Background(), db, zapLogger)
	if err != nil {
		zapLogger.Fatal("building menu catalog", zap.Error(err))
	}

	broker := push.NewBroker(cfg.Push.Buffer, zapLogger)
	defer broker.Close()

	locationFeed := location.NewFeed(domain.TruckLocation{
		Lat: cfg.Truck.InitialLat,
		Lng: cfg.Truck.InitialLng,
	}, zapLogger)

	updaterCtx, stopUpdater := context.WithCancel(context.Background())
	defer stopUpdater()
	go location.RunUpdater(updaterCtx, broker, locationFeed)

	submitter := order.NewSubmitter(cfg.Submitter, zapLogger)

	manager := session.NewManager(catalog, submitter, broker, zapLogger)
	defer manager.CloseAll()

	// The admin view is a long-lived session fed by the push channel.
	adminSession := manager.Open()

	sessionCtrl := session.NewController(manager, adminSession, zapLogger)
	pushCtrl := push.NewController(broker, zapLogger)
	locationCtrl := location.NewController(locationFeed, zapLogger)

	router := server.NewRouter(menuCtrl, sessionCtrl, pushCtrl, locationCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
