package locales

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var files embed.FS

// FS exposes the embedded locale dictionaries (<lang>.json).
func FS() fs.FS {
	return files
}
