package checkpoint

import (
	"fmt"
	"time"

	"github.com/katalvlaran/bisbm/bconfig"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// NewGormDB opens a checkpoint database connection per cfg.Type, tunes its
// pool, runs AutoMigrate for the checkpoint models, and optionally attaches
// the otel tracing plugin when tracingEnabled is set.
func NewGormDB(cfg bconfig.DatabaseConfig, tracingEnabled bool) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open %s db: %w", cfg.Type, err)
	}

	if tracingEnabled {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, fmt.Errorf("checkpoint: attach tracing plugin: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("checkpoint: underlying sql.DB: %w", err)
	}
	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("checkpoint: ping %s db: %w", cfg.Type, err)
	}

	if err := db.AutoMigrate(&Run{}, &TransitionRow{}); err != nil {
		return nil, fmt.Errorf("checkpoint: automigrate: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg bconfig.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "sqlite", "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "./bisbm.db"
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		if cfg.DSN != "" {
			return postgres.Open(cfg.DSN), nil
		}
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password)
		return postgres.Open(dsn), nil
	case "mysql":
		if cfg.DSN != "" {
			return mysql.Open(cfg.DSN), nil
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("checkpoint: unsupported database type %q", cfg.Type)
	}
}
