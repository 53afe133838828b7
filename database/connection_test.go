package database

import (
	"path/filepath"
	"testing"

	"blog/config"
	"blog/models"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		url  string
		name string
	}{
		{"postgres://blog:pw@localhost:5432/blog", "postgres"},
		{"postgresql://blog:pw@localhost:5432/blog", "postgres"},
		{"host=localhost user=blog dbname=blog sslmode=disable", "postgres"},
		{"sqlite:///blog.db", "sqlite"},
		{"blog.db", "sqlite"},
	}
	for _, tt := range tests {
		d, err := Dialector(tt.url)
		if err != nil {
			t.Fatalf("%s: %v", tt.url, err)
		}
		if d.Name() != tt.name {
			t.Errorf("%s: dialector %q, want %q", tt.url, d.Name(), tt.name)
		}
	}

	if _, err := Dialector("  "); err == nil {
		t.Fatalf("expected error for empty url")
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"sqlite:///blog.db":           "blog.db?_foreign_keys=on",
		"sqlite:////var/data/blog.db": "/var/data/blog.db?_foreign_keys=on",
		"data/blog.db":                "data/blog.db?_foreign_keys=on",
		"blog.db?cache=shared":        "blog.db?cache=shared&_foreign_keys=on",
		"sqlite://":                   "blog.db?_foreign_keys=on",
	}
	for in, want := range tests {
		if got := SQLiteDSN(in); got != want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConnectAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: filepath.Join(t.TempDir(), "blog.db"),
		DBLogLevel:  "silent",
	}
	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"blog_user", "blog_posts", "comment"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("missing table %s", table)
		}
	}
	if !db.Migrator().HasColumn(&models.Comment{}, "blog_id") {
		t.Errorf("comment.blog_id column missing")
	}
	if !db.Migrator().HasColumn(&models.Post{}, "img_url") {
		t.Errorf("blog_posts.img_url column missing")
	}
}
