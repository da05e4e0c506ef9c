package template

import (
	"bytes"
	"fmt"
	html "html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

const (
	tmplGlob      = "tmpl/*.html"
	partialPrefix = "_"
)

// Renderer is the interface for rendering a named template with the data provided.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// Registry implements Renderer with templates parsed once, at construction.
//
// A Registry is read-only after NewRegistry returns
// and may be shared by any number of goroutines.
type Registry struct {
	fns   html.FuncMap
	pool  *sync.Pool
	tmpls map[string]*html.Template
}

var _ Renderer = (*Registry)(nil)

// NewRegistry parses every page template found under tmpl/,
// in the filesystem set by WithFS and in the templates embedded in this package.
// A template in the WithFS filesystem shadows an embedded one of the same name.
//
// Files whose base name begins with an underscore are partials:
// each is parsed alongside every page so pages may {{ template }} them.
//
// Every template may call "nonce".
// Templates fail rendering when they reference a map key that does not exist.
func NewRegistry(opts ...RegistryOptFn) (*Registry, error) {
	reg := &Registry{
		fns:   make(html.FuncMap),
		pool:  &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		tmpls: make(map[string]*html.Template),
	}

	reg.AddFn(Nonce())

	var cfg registryConfig
	for _, opt := range opts {
		opt(reg, &cfg)
	}

	sources := []fs.FS{pkgFS}
	if cfg.fs != nil {
		sources = append([]fs.FS{cfg.fs}, sources...)
	}
	merged := newMergeFS(cfg.fs, pkgFS)

	names, err := globAll(sources...)
	if err != nil {
		return nil, err
	}

	var pages, partials []string
	for _, fp := range names {
		if strings.HasPrefix(path.Base(fp), partialPrefix) {
			partials = append(partials, fp)
			continue
		}
		pages = append(pages, fp)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %s", ErrNoFiles, tmplGlob)
	}

	for _, fp := range pages {
		tmpl, err := html.New(path.Base(fp)).
			Option("missingkey=error").
			Funcs(reg.fns).
			ParseFS(merged, append([]string{fp}, partials...)...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParse, fp, err)
		}

		reg.tmpls[path.Base(fp)] = tmpl
	}

	return reg, nil
}

// Names lists the names of every template the Registry can render, sorted.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.tmpls))
	for name := range reg.tmpls {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Render executes the template called name with data.
//
// Render never returns partially rendered output:
// any failure executing the template discards what was written and returns ErrRender.
func (reg *Registry) Render(name string, data any) ([]byte, error) {
	tmpl, ok := reg.tmpls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	b := reg.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer reg.pool.Put(b)

	if err := tmpl.Execute(b, data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRender, err)
	}

	out := make([]byte, b.Len())
	copy(out, b.Bytes())

	return out, nil
}

// globAll collects the unique paths matching tmplGlob across sources.
func globAll(sources ...fs.FS) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, src := range sources {
		matches, err := fs.Glob(src, tmplGlob)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				names = append(names, m)
			}
		}
	}
	sort.Strings(names)

	return names, nil
}
