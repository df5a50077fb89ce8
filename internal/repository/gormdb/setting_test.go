package gormdb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/proinvestix/desktop/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if db.Dialector() != "sqlite" {
		t.Fatalf("Dialector() = %q, want sqlite", db.Dialector())
	}
	return db
}

func TestSettingRepositoryRoundTrip(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	if _, err := repo.Get("theme"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() on empty table error = %v, want ErrNotFound", err)
	}

	if err := repo.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set("theme", "light"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	if err := repo.Set("language", "nl"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := repo.Get("theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "light" {
		t.Errorf("Get() = %q, want %q", got, "light")
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 2 || all[0].Key != "language" || all[1].Key != "theme" {
		t.Errorf("GetAll() = %+v, want language and theme", all)
	}

	if err := repo.Delete("theme"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get("theme"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestSettingRepositoryEmptyValue(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	if err := repo.Set("token", ""); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := repo.Get("token")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestDetectDialector(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "/tmp/settings.db", want: "sqlite"},
		{dsn: "sqlite:///tmp/settings.db", want: "sqlite"},
		{dsn: "mysql://root:pw@tcp(localhost:3306)/app?parseTime=true", want: "mysql"},
		{dsn: "host=localhost port=5432 user=postgres dbname=app sslmode=disable", want: "postgres"},
		{dsn: "redis://localhost:6379", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := detectDialector(tt.dsn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("detectDialector() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("detectDialector() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettingRepositoryRejectsBlankKeys(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	for _, key := range []string{"", "   ", "\t"} {
		t.Run("key="+key, func(t *testing.T) {
			if err := repo.Set(key, "v"); !errors.Is(err, domain.ErrInvalidKey) {
				t.Errorf("Set(%q) error = %v, want ErrInvalidKey", key, err)
			}
			if _, err := repo.Get(key); !errors.Is(err, domain.ErrInvalidKey) {
				t.Errorf("Get(%q) error = %v, want ErrInvalidKey", key, err)
			}
			if err := repo.Delete(key); !errors.Is(err, domain.ErrInvalidKey) {
				t.Errorf("Delete(%q) error = %v, want ErrInvalidKey", key, err)
			}
		})
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("GetAll() = %+v, want no rows", all)
	}
}

func TestSettingRepositoryDeleteMissing(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	if err := repo.Delete("never-stored"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
