package common

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PrintFormatted prints v to stdout in the requested output format.
func PrintFormatted(v any, format string) error {
	switch format {
	case "json":
		jsonString, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		fmt.Printf("%s\n", jsonString)
	case "yaml":
		yamlString, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		fmt.Printf("%s", yamlString)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
