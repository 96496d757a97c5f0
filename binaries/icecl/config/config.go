// Package config holds the named configurations icecl ships with.
package config

import (
	"embed"
	"strings"
)

//go:embed local.*
var files embed.FS

// Asset returns the configuration called name ("config/local.circle").
func Asset(name string) ([]byte, error) {
	return files.ReadFile(strings.TrimPrefix(name, "config/"))
}
