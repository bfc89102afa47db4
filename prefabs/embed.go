// Package prefabs holds the yaml descriptions entity factories build from.
package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed *.yaml
var embedded embed.FS

// Dir is a directory whose copies win over the embedded ones, so an edited
// prefab applies without a rebuild. Empty disables the override.
var Dir = "prefabs"

// Load returns the named prefab, from Dir when present there.
func Load(name string) ([]byte, error) {
	name = normalize(name)
	if OnDisk(name) {
		return fs.ReadFile(os.DirFS(Dir), name)
	}
	return fs.ReadFile(embedded, name)
}

// OnDisk reports whether name is overridden by a file in Dir.
func OnDisk(name string) bool {
	if Dir == "" {
		return false
	}
	_, err := fs.Stat(os.DirFS(Dir), normalize(name))
	return err == nil
}

// normalize accepts "player.yaml", "prefabs/player.yaml" or a backslashed
// path and returns the slash form relative to the prefab root.
func normalize(name string) string {
	name = path.Clean(strings.ReplaceAll(name, `\`, "/"))
	return strings.TrimPrefix(name, "prefabs/")
}
