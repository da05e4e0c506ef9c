/*
Package templatetest builds template registries from files held in memory,
so tests rendering templates need no testdata/ directories.

	reg, err := templatetest.NewRegistry(
		templatetest.NewMockFile("tmpl/search_result.html", []byte(`<p>{{ .Count }}</p>`)),
	)

Mocked files shadow the templates embedded in package template of the same name.
*/
package templatetest

import (
	"io/fs"
	"testing/fstest"

	"github.com/xy-planning-network/folio/http/template"
)

const readOnly fs.FileMode = 0o444

// A File is a template held in memory under a slash-separated path, e.g., "tmpl/page.html".
type File struct {
	Name string
	Data []byte
}

func NewMockFile(name string, data []byte) File {
	return File{Name: name, Data: data}
}

// NewMockFS returns a read-only fs.FS holding files.
// A later file replaces an earlier one of the same name.
func NewMockFS(files ...File) fs.FS {
	fsys := make(fstest.MapFS, len(files))
	for _, f := range files {
		fsys[f.Name] = &fstest.MapFile{Data: f.Data, Mode: readOnly}
	}

	return fsys
}

// NewRegistry constructs a *template.Registry from files and the embedded templates.
func NewRegistry(files ...File) (*template.Registry, error) {
	return template.NewRegistry(template.WithFS(NewMockFS(files...)))
}
