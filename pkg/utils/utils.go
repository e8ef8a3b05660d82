package utils

import (
	"encoding/json"
	"os"

	"golang.org/x/term"
)

// FmtPretty converts any interface to JSON with indentation, for use in logging where better readability is required. Errors are ignored.
func FmtPretty(v interface{}) string {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Ignore error
	}
	return string(jsonData)
}

func IsTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
