package html

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"
)

const (
	StaticFSRoot  = "static/"
	TestAppFSRoot = StaticFSRoot + "testapp"

	domScriptFile = StaticFSRoot + "dom.js"
)

//go:embed static
var staticEmbedFS embed.FS

func StaticFS() fs.FS {
	if devMode {
		return devFS
	}
	return staticEmbedFS
}

// TestAppFS is the page fixture SDK tests take snapshots of
func TestAppFS() (fs.FS, error) {
	return fs.Sub(StaticFS(), TestAppFSRoot)
}

// DOMScript is the PercyDOM bundle served at /percy/dom.js
func DOMScript(fSys fs.FS) ([]byte, error) {
	data, err := fs.ReadFile(fSys, domScriptFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read PercyDOM script")
	}
	if len(data) == 0 {
		return nil, errors.New("PercyDOM script is empty")
	}
	return data, nil
}
