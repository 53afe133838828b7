package database

import (
	"fmt"
	"log"
	"strings"

	"blog/config"
	"blog/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite://"

// Dialector picks the gorm driver for a DATABASE_URL. Postgres URLs and
// key=value DSNs go to postgres, everything else is treated as a SQLite file.
func Dialector(databaseURL string) (gorm.Dialector, error) {
	url := strings.TrimSpace(databaseURL)
	switch {
	case url == "":
		return nil, fmt.Errorf("empty database url")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "host="):
		return postgres.Open(url), nil
	default:
		return sqlite.Open(SQLiteDSN(url)), nil
	}
}

// SQLiteDSN turns "sqlite:///blog.db" (or a bare path) into a go-sqlite3 DSN
// with foreign keys enforced.
func SQLiteDSN(url string) string {
	path := url
	if strings.HasPrefix(path, sqliteScheme) {
		path = strings.TrimPrefix(path, sqliteScheme)
		// sqlite:///relative.db keeps one slash as separator, sqlite:////abs.db is absolute
		path = strings.TrimPrefix(path, "/")
	}
	if path == "" {
		path = "blog.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Printf("Database connected successfully (%s)", dialector.Name())
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.Println("Database migrated successfully")
	return nil
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
