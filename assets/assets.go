// Package assets embeds the game's catalog records.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed data/*.txt
var files embed.FS

// Data is the catalog filesystem: systems.txt, races.txt, ships.txt and
// thrusters.txt at its root.
var Data fs.FS = mustSub(files, "data")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
