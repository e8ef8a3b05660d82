package storage

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// fileConfig implements Config backed by a YAML file. The whole file is
// rewritten on every Set/Unset; the config holds a handful of keys at most.
type fileConfig struct {
	path string
}

// NewConfig returns the Config backed by the user's config directory.
func NewConfig() (Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving config directory: %v", err)
	}
	return NewFileConfig(filepath.Join(configDir, "usb-ids", configFileName)), nil
}

// NewFileConfig returns a Config backed by the YAML file at path. A missing
// file reads as an empty config.
func NewFileConfig(path string) Config {
	return &fileConfig{path: path}
}

func (c *fileConfig) Get(key string) (string, error) {
	values, err := c.load()
	if err != nil {
		return "", err
	}
	value, found := values[key]
	if !found {
		return "", fmt.Errorf("%w: %s", ErrorNotFound, key)
	}
	return value, nil
}

func (c *fileConfig) GetAll() (map[string]string, error) {
	return c.load()
}

func (c *fileConfig) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown key %q", key)
	}

	values, err := c.load()
	if err != nil {
		return err
	}
	values[key] = value
	return c.store(values)
}

func (c *fileConfig) Unset(key string) error {
	values, err := c.load()
	if err != nil {
		return err
	}
	if _, found := values[key]; !found {
		return fmt.Errorf("%w: %s", ErrorNotFound, key)
	}
	delete(values, key)
	return c.store(values)
}

func (c *fileConfig) load() (map[string]string, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%s: %v", c.path, err)
	}
	return values, nil
}

func (c *fileConfig) store(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}
	return nil
}

// mockConfig is an in-memory Config for tests.
type mockConfig struct {
	values map[string]string
}

func NewMockConfig() Config {
	return &mockConfig{values: make(map[string]string)}
}

func (c *mockConfig) Get(key string) (string, error) {
	value, found := c.values[key]
	if !found {
		return "", fmt.Errorf("%w: %s", ErrorNotFound, key)
	}
	return value, nil
}

func (c *mockConfig) GetAll() (map[string]string, error) {
	return maps.Clone(c.values), nil
}

func (c *mockConfig) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown key %q", key)
	}
	c.values[key] = value
	return nil
}

func (c *mockConfig) Unset(key string) error {
	if _, found := c.values[key]; !found {
		return fmt.Errorf("%w: %s", ErrorNotFound, key)
	}
	delete(c.values, key)
	return nil
}
