// Package resources embeds the HTML views shipped with the binary.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed views
var embedded embed.FS

// Views returns the views directory as the root of an fs.FS.
func Views() fs.FS {
	sub, err := fs.Sub(embedded, "views")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
