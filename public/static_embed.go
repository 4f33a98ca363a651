// Package public embeds the site's static assets served under /assets/.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// StaticFS returns the assets rooted at static/, e.g. "css/site.css".
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
