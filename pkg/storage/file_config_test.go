package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := NewFileConfig(path)

	// Missing file reads as empty.
	values, err := cfg.GetAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 0 {
		t.Fatalf("expected empty config, got %v", values)
	}

	err = cfg.Set(KeyUpdateURL, "http://example.com/usb.ids")
	if err != nil {
		t.Fatal(err)
	}

	// A fresh instance must see the persisted value.
	value, err := NewFileConfig(path).Get(KeyUpdateURL)
	if err != nil {
		t.Fatal(err)
	}
	if value != "http://example.com/usb.ids" {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestFileConfigUnknownKey(t *testing.T) {
	cfg := NewFileConfig(filepath.Join(t.TempDir(), "config.yaml"))

	err := cfg.Set("no-such-key", "value")
	if err == nil {
		t.Fatal("unknown key should be rejected")
	}
	t.Log(err)
}

func TestFileConfigNotFound(t *testing.T) {
	cfg := NewFileConfig(filepath.Join(t.TempDir(), "config.yaml"))

	_, err := cfg.Get(KeyDBPath)
	if !errors.Is(err, ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}

	err = cfg.Unset(KeyDBPath)
	if !errors.Is(err, ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestFileConfigUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := NewFileConfig(path)

	if err := cfg.Set(KeyDBPath, "/tmp/usb.ids"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Unset(KeyDBPath); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Get(KeyDBPath); !errors.Is(err, ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound after unset, got %v", err)
	}
}

func TestFileConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("not: [valid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileConfig(path).GetAll()
	if err == nil {
		t.Fatal("malformed yaml should fail")
	}
	t.Log(err)
}
