// Package web provides the embedded stylesheet and icons served under /static/.
package web

import "embed"

// StaticFiles holds the embedded static web assets.
// The embed directive embeds the entire static/ directory.
//
//go:embed static
var StaticFiles embed.FS
