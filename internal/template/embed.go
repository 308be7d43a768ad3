package template

import (
	"embed"
	"io/fs"
)

//go:embed assets
var embeddedAssets embed.FS

// Assets returns the embedded template tree rooted at the asset names used
// by the catalog (clap/..., docopt/..., license/..., README.md.tmpl).
func Assets() (fs.FS, error) {
	return fs.Sub(embeddedAssets, "assets")
}
