package credentials

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/lazyshelf/lazyshelf/internal/models"
)

func TestStoreSaveGetDelete(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	if err := store.Save("db.example.com", 5432, "shop", "alice", "hunter2"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	password, err := store.Get("db.example.com", 5432, "shop", "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if password != "hunter2" {
		t.Errorf("Get() = %q, want %q", password, "hunter2")
	}

	if err := store.Delete("db.example.com", 5432, "shop", "alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.Get("db.example.com", 5432, "shop", "alice"); !errors.Is(err, ErrPasswordNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrPasswordNotFound", err)
	}
}

func TestStoreSaveSkipsEmptyPassword(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	if err := store.Save("db.example.com", 5432, "shop", "bob", ""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := store.Get("db.example.com", 5432, "shop", "bob"); !errors.Is(err, ErrPasswordNotFound) {
		t.Errorf("Get() error = %v, want ErrPasswordNotFound", err)
	}
}

func TestStoreDeleteMissingEntry(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	if err := store.Delete("db.example.com", 5432, "shop", "nobody"); err != nil {
		t.Errorf("Delete() on missing entry error = %v", err)
	}
}

func TestStoreKeysAreScopedPerConnection(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	if err := store.Save("db.example.com", 5432, "shop", "alice", "first"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save("db.example.com", 5433, "shop", "alice", "second"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	password, err := store.Get("db.example.com", 5432, "shop", "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if password != "first" {
		t.Errorf("Get() = %q, want %q", password, "first")
	}
}

func TestResolvePrefersConfigPassword(t *testing.T) {
	keyring.MockInit()
	t.Setenv("PGPASSWORD", "fromenv")

	config := &models.ConnectionConfig{
		Host: "db.example.com", Port: 5432, Database: "shop",
		User: "alice", Password: "fromconfig",
	}
	if source := Resolve(config, NewStore()); source != models.SourceConfig {
		t.Errorf("Resolve() source = %v, want SourceConfig", source)
	}
	if config.Password != "fromconfig" {
		t.Errorf("password = %q, want %q", config.Password, "fromconfig")
	}
}

func TestResolveUsesEnvironment(t *testing.T) {
	keyring.MockInit()
	t.Setenv("PGPASSWORD", "fromenv")

	config := &models.ConnectionConfig{
		Host: "db.example.com", Port: 5432, Database: "shop", User: "alice",
	}
	if source := Resolve(config, NewStore()); source != models.SourceEnvironment {
		t.Errorf("Resolve() source = %v, want SourceEnvironment", source)
	}
	if config.Password != "fromenv" {
		t.Errorf("password = %q, want %q", config.Password, "fromenv")
	}
}

func TestResolveReadsSavedPassword(t *testing.T) {
	keyring.MockInit()
	t.Setenv("PGPASSWORD", "")

	store := NewStore()
	if err := store.Save("db.example.com", 5432, "shop", "alice", "fromkeyring"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	config := &models.ConnectionConfig{
		Host: "db.example.com", Port: 5432, Database: "shop", User: "alice",
	}
	if source := Resolve(config, store); source != models.SourceKeyring {
		t.Errorf("Resolve() source = %v, want SourceKeyring", source)
	}
	if config.Password != "fromkeyring" {
		t.Errorf("password = %q, want %q", config.Password, "fromkeyring")
	}
}
