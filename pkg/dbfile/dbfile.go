package dbfile

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jpnorenam/usb-ids/pkg/usbids"
)

// DefaultUpdateURL is the canonical home of the registry file.
const DefaultUpdateURL = "http://www.linux-usb.org/usb.ids"

// MaxSnapshotSize bounds downloaded snapshots; the registry file is well
// under 2 MiB.
const MaxSnapshotSize = 8 * 1024 * 1024

const dataFileName = "usb.ids"

// Source describes where the active registry snapshot came from.
type Source struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Embedded bool   `json:"embedded" yaml:"embedded"`
}

func (s Source) String() string {
	if s.Embedded {
		return "vendored snapshot"
	}
	return s.Path
}

// DefaultPath returns the location where updated snapshots are stored.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("error resolving cache directory: %v", err)
	}
	return filepath.Join(cacheDir, "usb-ids", dataFileName), nil
}

// Load returns the active registry. An explicit path takes precedence; next
// an updated snapshot at the default path, if one exists; otherwise the
// vendored snapshot. A corrupt updated snapshot falls back to the vendored
// one with a warning rather than failing the lookup.
func Load(explicitPath string, verbose bool) (*usbids.Registry, Source, error) {
	if explicitPath != "" {
		reg, err := loadFile(explicitPath)
		if err != nil {
			return nil, Source{}, err
		}
		return reg, Source{Path: explicitPath}, nil
	}

	path, err := DefaultPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			reg, loadErr := loadFile(path)
			if loadErr == nil {
				if verbose {
					log.Printf("Using updated snapshot at %s", path)
				}
				return reg, Source{Path: path}, nil
			}
			log.Printf("Warning: ignoring snapshot at %s: %v", path, loadErr)
		}
	}

	reg, err := usbids.Default()
	if err != nil {
		return nil, Source{}, fmt.Errorf("error parsing vendored snapshot: %v", err)
	}
	if verbose {
		log.Printf("Using vendored snapshot, version %s", reg.Version)
	}
	return reg, Source{Embedded: true}, nil
}

func loadFile(path string) (*usbids.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	defer f.Close()

	reg, err := usbids.ParseIDs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return reg, nil
}

// Install validates data as a registry snapshot and writes it to path
// atomically. The previous snapshot is left untouched when validation or the
// write fails.
func Install(data []byte, path string) (*usbids.Registry, error) {
	reg, err := usbids.ParseIDs(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot does not parse: %v", err)
	}
	if len(reg.Vendors) == 0 {
		return nil, errors.New("snapshot contains no vendors")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, dataFileName+".*")
	if err != nil {
		return nil, fmt.Errorf("error creating temp file: %v", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("error writing snapshot: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("error closing temp file: %v", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("error installing snapshot: %v", err)
	}

	return reg, nil
}
