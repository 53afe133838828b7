package static

import (
	"embed"
	"net/http"
)

//go:embed css
var files embed.FS

// FS serves the embedded assets, so /static works from any working directory.
func FS() http.FileSystem {
	return http.FS(files)
}
