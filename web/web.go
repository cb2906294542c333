// Package web holds the browser client served by the relay.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html
var IndexHTML []byte

//go:embed static
var assets embed.FS

// Static returns the static asset tree rooted at web/static.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
