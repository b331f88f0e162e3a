package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/cafe-pulse-api/internal/api"
	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/db"
	"github.com/vietanh2810/cafe-pulse-api/internal/logger"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao/memory"
	"github.com/vietanh2810/cafe-pulse-api/internal/seed"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	stores, err := openStores(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, stores)

	if conf.Seed.Path != "" {
		if err = seed.LoadFile(context.Background(), s.CatalogService(), conf.Seed.Path); err != nil {
			return fmt.Errorf("failed to seed catalogs -> %w", err)
		}
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr), zap.String("storage", conf.Storage.Driver))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openStores(conf *config.AppConfig) (api.Stores, error) {
	if conf.Storage.Driver == config.StorageMemory {
		store := memory.NewStore()
		return api.Stores{Catalog: store, Activity: store}, nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	var (
		postgresDB *gorm.DB
		err        error
	)
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return api.Stores{}, err
	}

	return api.Stores{
		Catalog:  dao.NewCatalogDAO(postgresDB),
		Activity: dao.NewActivityDAO(postgresDB),
	}, nil
}
