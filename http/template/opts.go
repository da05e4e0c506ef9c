package template

import "io/fs"

type registryConfig struct {
	fs fs.FS
}

// The RegistryOptFn applies functional options to a *Registry when constructing it.
type RegistryOptFn func(*Registry, *registryConfig)

// WithFn encloses a named function so it can be added to a *Registry's function map.
func WithFn(name string, fn any) RegistryOptFn {
	return func(reg *Registry, _ *registryConfig) {
		reg.AddFn(name, fn)
	}
}

// WithFS sets a filesystem whose tmpl/ directory is searched before the embedded templates.
func WithFS(filesys fs.FS) RegistryOptFn {
	return func(_ *Registry, cfg *registryConfig) {
		cfg.fs = filesys
	}
}
