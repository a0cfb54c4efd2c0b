package commands

import (
	"github.com/urban-tools/congestion-atlas/pkg/services/config"
)

// loadProfile falls back to the default profile when no path was given.
func loadProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadProfile(path)
}
