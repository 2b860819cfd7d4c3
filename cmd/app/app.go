package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/classquest/classquest-api/internal/api"
	"github.com/classquest/classquest-api/internal/config"
	"github.com/classquest/classquest-api/internal/db"
	"github.com/classquest/classquest-api/internal/logger"
	"github.com/classquest/classquest-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDB(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	seeded, err := dao.SeedMarketItems(ctx, gormDB, marketItems(conf.Market.Items))
	if err != nil {
		return fmt.Errorf("failed to seed market -> %w", err)
	}
	if seeded > 0 {
		zap.L().Info("seeded market items", zap.Int("count", seeded))
	}

	s := api.NewServer(ctx, conf, gormDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openDB prefers DATABASE_URL (always Postgres) over the config file.
func openDB(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	return db.Open(conf.Database)
}

func marketItems(items []config.MarketItemConfig) []dao.MarketItem {
	result := make([]dao.MarketItem, len(items))
	for i, item := range items {
		result[i] = dao.MarketItem{
			Name:  item.Name,
			Price: item.Price,
			Icon:  item.Icon,
		}
	}

	return result
}
