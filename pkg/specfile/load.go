package specfile

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/paramparser"
)

// Load reads and resolves a single spec file.
func Load(filename string) (paramparser.Spec, paramparser.Record, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	spec, defaults, err := doc.Spec()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return spec, defaults, nil
}

type entry struct {
	spec     paramparser.Spec
	defaults paramparser.Record
}

// Registry holds resolved specs by name. It is read-only after loading and
// safe for concurrent use.
type Registry struct {
	entries map[string]entry
}

// LoadDir loads every spec file directly inside dir.
func LoadDir(dir string) (*Registry, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every .yaml, .yml, .json and .toml file directly inside dir
// of fsys. A spec is named after its file without the extension. Other
// files and subdirectories are ignored.
func LoadFS(fsys fs.FS, dir string) (*Registry, error) {
	dirEntries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec directory: %w", err)
	}

	r := &Registry{entries: make(map[string]entry)}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		format, err := FormatFromPath(de.Name())
		if err != nil {
			continue
		}

		name := strings.TrimSuffix(de.Name(), path.Ext(de.Name()))
		if _, ok := r.entries[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpec, name)
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read spec file %s: %w", de.Name(), err)
		}
		doc, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", de.Name(), err)
		}
		spec, defaults, err := doc.Spec()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", de.Name(), err)
		}
		r.entries[name] = entry{spec: spec, defaults: defaults}
	}
	return r, nil
}

// Lookup returns the spec and defaults registered under name.
func (r *Registry) Lookup(name string) (paramparser.Spec, paramparser.Record, bool) {
	e, ok := r.entries[name]
	return e.spec, e.defaults, ok
}

// Names lists the registered spec names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Len returns the number of registered specs.
func (r *Registry) Len() int { return len(r.entries) }
