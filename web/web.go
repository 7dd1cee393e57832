// Package web bundles the browser admin UI into the server binary.
package web

import "embed"

//go:embed static
var Assets embed.FS
