package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/controle-exames/internal/models"
)

type Options struct {
	DSN         string
	AutoMigrate bool
}

func NewDB(opts Options, logger *slog.Logger) (*gorm.DB, error) {
	start := time.Now()

	db, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db: get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if opts.AutoMigrate {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Exam{},
		); err != nil {
			return nil, fmt.Errorf("db: migrate: %w", err)
		}
	}

	logger.Info("database connection established",
		"auto_migrate", opts.AutoMigrate,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedUser creates the user when no row with the same email exists.
func SeedUser(ctx context.Context, db *gorm.DB, u models.User, logger *slog.Logger) error {
	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		logger.Info("seed user already present", "email", u.Email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db: seed lookup: %w", err)
	}

	if err := db.WithContext(ctx).Create(&u).Error; err != nil {
		return fmt.Errorf("db: seed create: %w", err)
	}
	logger.Info("seed user created", "email", u.Email, "id", u.ID)
	return nil
}
