// Package messages turns message keys and named parameters into user-facing text.
package messages

import "embed"

// catalogFS embeds every PO catalog at build time.
//
//go:embed catalog/*.po
var catalogFS embed.FS
