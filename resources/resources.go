// Package resources embeds the game's sprites.
package resources

import "embed"

//go:generate go run generate.go

//go:embed *.png
var FS embed.FS
