package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/classquest/classquest-api/internal/config"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(zap.NewStdLog(zap.L()), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open picks the driver named in the database config.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	switch conf.Driver {
	case config.DriverPostgres:
		return OpenPostgres(conf)
	default:
		return OpenSQLite(conf.SQLitePath)
	}
}

// OpenSQLite opens a file backed (or ":memory:") SQLite database. The pool is
// capped at one connection so writers never see "database is locked" and an
// in-memory database is not split across connections.
func OpenSQLite(path string) (*gorm.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open sqlite -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(conf *config.DatabaseConfig) (*gorm.DB, error) {
	pg := conf.Postgres
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, pg.Password, pg.DB, pg.SSLMode,
	)

	db, err := openPostgres(dsn)
	if err != nil {
		return nil, err
	}

	if err = tunePool(db, conf.MaxOpenConns, conf.MaxIdleConns); err != nil {
		return nil, err
	}

	return db, nil
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := openPostgres(url)
	if err != nil {
		return nil, err
	}

	if err = tunePool(db, 25, 10); err != nil {
		return nil, err
	}

	return db, nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open postgres -> %w", err)
	}

	return db, nil
}

func tunePool(db *gorm.DB, maxOpen, maxIdle int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}
