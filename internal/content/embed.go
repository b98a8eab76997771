// Package content generates what a room holds: enemies, items, a gambling NPC
// or a locked door. Tables are embedded JSON.
package content

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
