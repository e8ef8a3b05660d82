package storage

import "fmt"

var ErrorNotFound = fmt.Errorf("not found")

// Config stores the tool's settings as flat string key/value pairs.
type Config interface {
	Get(key string) (string, error)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Configuration keys understood by the tool. Set rejects anything else.
const (
	KeyDBPath    = "db-path"    // explicit snapshot path, overriding the default lookup order
	KeyUpdateURL = "update-url" // where `update` downloads the registry from
)

var knownKeys = []string{
	KeyDBPath,
	KeyUpdateURL,
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}
