// Package configs embeds the shipped game tuning files.
package configs

import (
	"embed"

	"github.com/younwookim/gone/internal/infrastructure/config"
)

//go:embed *.json
var FS embed.FS

// Load reads and validates the embedded configuration
func Load() (*config.GameConfig, error) {
	return config.NewFSLoader(FS, "configs").LoadAll()
}
