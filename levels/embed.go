// Package levels embeds the shipped maps. A directory on disk can replace the
// embedded set while iterating on level design.
package levels

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.tmx
var LevelsFS embed.FS

// FS returns the level file system: dir when set, otherwise the embedded maps.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return LevelsFS
}
