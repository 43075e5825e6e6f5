package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals one embedded content file. A failure here is the
// data-load failure of the startup contract: callers must not start the
// command loop if any content file cannot be loaded.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a content file, panicking on error.
// Use this only in tests and tools where a missing file is a programming error.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
