package usbids

import (
	"bytes"
	_ "embed"
	"sync"
)

// Vendored snapshot of the USB ID Repository. Refreshed by re-vendoring the
// file from linux-usb.org (see pkg/dbfile for runtime updates).
//
//go:embed usb.ids
var embedded []byte

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry parsed from the vendored snapshot. The
// snapshot is parsed once; the returned registry is shared and read-only.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = ParseIDs(bytes.NewReader(embedded))
	})
	return defaultReg, defaultErr
}
