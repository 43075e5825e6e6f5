// Package gamedata provides the embedded world content (locations, characters,
// starting player) and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds all JSON content files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
