package config

import (
	"errors"
	"testing"

	"github.com/jpnorenam/usb-ids/cmd/cli/common"
	"github.com/jpnorenam/usb-ids/pkg/storage"
)

func TestSetValue(t *testing.T) {
	cfg := storage.NewMockConfig()
	cmd := setCommand{Context: &common.Context{Config: cfg}}

	if err := cmd.setValue("update-url=http://mirror.example/usb.ids"); err != nil {
		t.Fatal(err)
	}

	value, err := cfg.Get(storage.KeyUpdateURL)
	if err != nil {
		t.Fatal(err)
	}
	if value != "http://mirror.example/usb.ids" {
		t.Fatalf("unexpected value: %q", value)
	}

	// A value containing an equal sign is split only on the first one
	if err := cmd.setValue("update-url=http://mirror.example/?a=b"); err != nil {
		t.Fatal(err)
	}
	value, err = cfg.Get(storage.KeyUpdateURL)
	if err != nil {
		t.Fatal(err)
	}
	if value != "http://mirror.example/?a=b" {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestSetValueErrors(t *testing.T) {
	cmd := setCommand{Context: &common.Context{Config: storage.NewMockConfig()}}

	if err := cmd.setValue("=value"); err == nil {
		t.Fatal("expected an error for a key starting with =")
	}
	if err := cmd.setValue("no-separator"); err == nil {
		t.Fatal("expected an error for a missing =")
	}
	if err := cmd.setValue("unknown-key=value"); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestSetEmptyValueUnsets(t *testing.T) {
	cfg := storage.NewMockConfig()
	cmd := setCommand{Context: &common.Context{Config: cfg}}

	if err := cmd.setValue("db-path=/tmp/usb.ids"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.setValue("db-path="); err != nil {
		t.Fatal(err)
	}

	_, err := cfg.Get(storage.KeyDBPath)
	if !errors.Is(err, storage.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
