package cmd

import (
	"log/slog"
	"os"
	"strings"

	// database/sql driver selected by db.driver=postgres.
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func openDatabase(cfg DBConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector := gorm_postgres.New(gorm_postgres.Config{
		DriverName: cfg.Driver,
		DSN:        cfg.DSN(),
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("database connected", "host", cfg.Host, "name", cfg.Name, "driver", cfg.Driver)
	return db, nil
}
