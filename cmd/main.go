package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"aadhrita/cmd/buildCFG"
	"aadhrita/internal/api/api"
	"aadhrita/internal/auth"
	"aadhrita/internal/live"
	"aadhrita/internal/notify"
	"aadhrita/internal/service"
	"aadhrita/internal/store"
	"aadhrita/internal/store/localstore"
	"aadhrita/internal/store/remotestore"
	"aadhrita/pkg/imageurl"
)

var startupRetry = retry.Strategy{Attempts: 5, Delay: time.Second, Backoff: 2}

func main() {
	_ = godotenv.Load()

	zlog.Init()
	log := zlog.Logger

	cfg := config.New()
	if err := cfg.Load("config.yaml", "", "'"); err != nil {
		log.Fatal().Msgf("failed to load configuration: %v", err)
	}
	serverCfg := buildCFG.BuildServerConfig(cfg, &log)
	contentCfg, err := buildCFG.BuildContentConfig(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build content config")
	}
	imageurl.SetDefaultWidth(contentCfg.ThumbnailWidth)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var (
		contentStore store.ContentStore
		sessions     auth.SessionStore
		roles        store.RoleReader
		feed         *notify.Feed
	)

	switch contentCfg.Store {
	case buildCFG.StoreLocal:
		local, err := localstore.New(contentCfg.LocalPath, notify.NewBroker(), &log)
		if err != nil {
			log.Fatal().Msgf("failed to open local store: %v", err)
		}
		defer local.Close()
		contentStore = local
		sessions = local
		log.Info().Str("path", contentCfg.LocalPath).Msg("Using local content store")

	case buildCFG.StoreRemote:
		masterDSN, slaveDSNs, poolOptions, err := buildCFG.BuildDBConfig(cfg, &log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build DB config")
		}
		db, err := dbpg.New(masterDSN, slaveDSNs, poolOptions)
		if err != nil {
			log.Fatal().Msgf("failed to connect to DB: %v", err)
		}
		if err := retry.Do(db.Master.Ping, startupRetry); err != nil {
			log.Fatal().Msgf("DB ping failed: %v", err)
		}
		log.Info().Msg("Database connected successfully")

		rabbitCfg, err := buildCFG.BuildRabbitConfig(cfg, &log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load RabbitMQ config")
		}
		err = retry.Do(func() error {
			feed, err = notify.NewFeed(rabbitCfg.Url, rabbitCfg.Exchange)
			return err
		}, startupRetry)
		if err != nil {
			log.Fatal().Msgf("failed to connect to RabbitMQ: %v", err)
		}
		defer feed.Close()
		if err := feed.Start(workerCtx); err != nil {
			log.Fatal().Err(err).Msg("failed to start change feed")
		}

		remote, err := remotestore.New(db, feed, &log)
		if err != nil {
			log.Fatal().Msgf("failed to initialize remote store: %v", err)
		}
		cwd, err := os.Getwd()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot get working directory")
		}
		if err := remote.MigrateUp(filepath.Join(cwd, "migrations/postgres")); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		log.Info().Msg("Migrations applied successfully")

		contentStore = remote
		sessions = auth.NewMemorySessions()
		roles = remote
		log.Info().Msg("Using remote content store")

	default:
		log.Fatal().Msgf("unknown content store %q", contentCfg.Store)
	}

	if err := contentStore.Initialize(workerCtx); err != nil {
		log.Fatal().Msgf("failed to initialize content store: %v", err)
	}

	views := live.NewViews(contentStore, &log)
	if err := views.Start(workerCtx, contentStore); err != nil {
		log.Fatal().Err(err).Msg("failed to start live views")
	}
	defer views.Stop()

	authManager := auth.NewManager(contentCfg.AdminPassword, sessions, roles)
	serviceInstance := service.NewService(contentStore, views, authManager, &log, contentCfg.AnnouncementMode)
	app := api.NewRouters(&api.Routers{Service: serviceInstance, Auth: authManager})

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s", serverCfg.Port)
		if err := app.Run(":" + serverCfg.Port); err != nil {
			serverErrChan <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		log.Info().Msgf("Received signal %s. Initiating shutdown...", sig)
	case err := <-serverErrChan:
		log.Error().Msgf("Server error: %v", err)
	}

	cancelWorkers()
	log.Info().Msg("Shutdown complete")
}
