package database

import (
	"context"
	"fmt"

	"github.com/sangkips/cafeteria-pos/internal/config"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm dialect for the configured driver
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "":
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), nil
	case "mysql":
		return mysql.New(mysql.Config{
			DSN:               cfg.DSN(),
			DefaultStringSize: 191,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q (use postgres or mysql)", cfg.Driver)
	}
}

// NewDB opens the sales store
func NewDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to database", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&entity.Item{},
		&entity.GroupItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Setting{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// SeedDefaultData stores the manager PIN hash and default language unless
// they were already set.
func SeedDefaultData(ctx context.Context, settings repository.SettingsRepository, pin string, log *zap.Logger) error {
	if pin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash manager PIN: %w", err)
		}
		if err := settings.SetIfAbsent(ctx, entity.SettingManagerPINHash, string(hash)); err != nil {
			return fmt.Errorf("failed to seed manager PIN: %w", err)
		}
	}

	if err := settings.SetIfAbsent(ctx, entity.SettingLanguage, entity.DefaultLanguage); err != nil {
		return fmt.Errorf("failed to seed language: %w", err)
	}

	log.Info("default data seeding completed")
	return nil
}
