package services

import (
	"path/filepath"
	"testing"

	"blog/config"
	"blog/database"
	"blog/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DatabaseURL: filepath.Join(t.TempDir(), "test.db"),
		DBLogLevel:  "silent",
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustRegister(t *testing.T, users *UserService, name, email string) *models.User {
	t.Helper()
	u, err := users.CreateUser(&models.RegisterForm{Name: name, Email: email, Password: "pw123456"})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return u
}
