// Package templates embeds the html/template sources for pages and htmx fragments.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed layouts pages partials fragments
var files embed.FS

// FS exposes the embedded templates. Paths are relative, e.g. "layouts/base.tmpl".
func FS() fs.FS {
	return files
}
