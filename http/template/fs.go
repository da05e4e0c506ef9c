package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS
type mergeFS struct {
	// A cache for minimizing ascertaining which directory holds the template.
	cache map[string]func(string) (fs.File, error)

	// Caller provided filesystem, possibly nil
	userDir fs.FS

	// Package-level directory embedding tmpl/
	pkgDir fs.FS

	sync.RWMutex
}

func newMergeFS(user, pkg fs.FS) *mergeFS {
	return &mergeFS{
		cache:   make(map[string]func(string) (fs.File, error)),
		userDir: user,
		pkgDir:  pkg,
	}
}

// Open opens the file matching the name using the following strategy:
// - check the cache
// - check the caller provided filesystem
// - check the package-level virtual filesystem
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.RLock()
	fn, ok := mfs.cache[name]
	mfs.RUnlock()
	if ok {
		return fn(name)
	}

	if mfs.userDir != nil {
		file, err := mfs.userDir.Open(name)
		if err == nil {
			mfs.remember(name, mfs.userDir.Open)
			return file, nil
		}

		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("unable to open template: %w", err)
		}
	}

	file, err := mfs.pkgDir.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open template %s: %w", name, err)
	}

	mfs.remember(name, mfs.pkgDir.Open)
	return file, nil
}

func (mfs *mergeFS) remember(name string, open func(string) (fs.File, error)) {
	mfs.Lock()
	mfs.cache[name] = open
	mfs.Unlock()
}

//go:embed tmpl/*
var pkgFS embed.FS
