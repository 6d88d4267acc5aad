package db

import (
	"fmt"

	"github.com/whenwework/platform-go/internal/config"
	"github.com/whenwework/platform-go/internal/domain/audit"
	"github.com/whenwework/platform-go/internal/domain/business"
	"github.com/whenwework/platform-go/internal/domain/job"
	"github.com/whenwework/platform-go/internal/domain/jobapplication"
	"github.com/whenwework/platform-go/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the postgres connection pool and stores it in DB.
func Init(cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	if cfg.AutoMigrate {
		if err := Migrate(gdb); err != nil {
			return nil, err
		}
	}

	DB = gdb
	zap.L().Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
	return gdb, nil
}

// Migrate creates or updates every table the API owns.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&business.Business{},
		&user.User{},
		&job.Job{},
		&jobapplication.JobApplication{},
		&audit.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
