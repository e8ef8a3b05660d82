package shell

import (
	"strings"
	"testing"

	"github.com/jpnorenam/usb-ids/pkg/usbids"
)

func shellRegistry(t *testing.T) *usbids.Registry {
	t.Helper()
	reg, err := usbids.Default()
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestEval(t *testing.T) {
	reg := shellRegistry(t)

	cases := []struct {
		name string
		line string
		want string
	}{
		{"vendor", "vendor 1d6b", "Linux Foundation"},
		{"device", "device 1d6b 0003", "3.0 root hub (Linux Foundation)"},
		{"class", "class 03", "Human Interface Device"},
		{"subclass", "class 03 01", "Boot Interface Subclass"},
		{"protocol", "class 03 01 01", "Keyboard"},
		{"help", "help", "leave the shell"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			output, err := eval(reg, c.line)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(output, c.want) {
				t.Fatalf("expected output containing %q, got %q", c.want, output)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	reg := shellRegistry(t)

	cases := []struct {
		name string
		line string
	}{
		{"unknown command", "frobnicate"},
		{"missing args", "device 1d6b"},
		{"bad hex", "vendor zzzz"},
		{"unknown vendor", "vendor 0000"},
		{"no matches", "search no such device anywhere"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := eval(reg, c.line); err == nil {
				t.Fatalf("expected an error for %q", c.line)
			}
		})
	}
}

func TestEvalClassListing(t *testing.T) {
	reg := shellRegistry(t)

	output, err := eval(reg, "class")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(output, "\n")
	if len(lines) != len(reg.Classes) {
		t.Fatalf("expected %d classes, got %d lines", len(reg.Classes), len(lines))
	}
	// Listing is ordered by class code
	if !strings.HasPrefix(lines[0], "00  ") {
		t.Fatalf("expected the listing to start with class 00, got %q", lines[0])
	}
	if !strings.Contains(output, "03  Human Interface Device") {
		t.Fatalf("expected class 03 in the listing, got %q", output)
	}
}

func TestEvalSearch(t *testing.T) {
	reg := shellRegistry(t)

	output, err := eval(reg, "search root hub")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "1d6b:0003") {
		t.Fatalf("expected 1d6b:0003 in output, got %q", output)
	}
}
