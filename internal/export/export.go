// Package export renders generated colour ramps into design-token
// artefacts. Exporters own all formatting decisions (property names,
// rounding, file layout); the engine only hands them hex and perceptual
// data.
package export

import (
	"fmt"
	"sort"

	"github.com/ramptone/ramptone/internal/ramp"
)

// Exporter turns a set of generated ramps into one or more output files.
// Returns a map of filename -> content to support exporters that emit
// multiple files.
type Exporter interface {
	// Name returns the exporter's name (e.g. "css", "json").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// Export renders the ramps.
	Export(results []ramp.Result) (map[string][]byte, error)
}

// Registry holds all registered exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates a registry pre-populated with the built-in
// exporters.
func NewRegistry() *Registry {
	r := &Registry{exporters: make(map[string]Exporter)}
	r.Register(NewCSS())
	r.Register(NewJSON())
	r.Register(NewCSV())
	return r
}

// Register adds an exporter to the registry.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// Names returns all registered exporter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a requested list of exporter names (or "all") to concrete
// exporters.
func (r *Registry) Resolve(requested []string) ([]Exporter, error) {
	if len(requested) == 1 && requested[0] == "all" {
		out := make([]Exporter, 0, len(r.exporters))
		for _, name := range r.Names() {
			out = append(out, r.exporters[name])
		}
		return out, nil
	}

	out := make([]Exporter, 0, len(requested))
	for _, name := range requested {
		e, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown exporter %q (available: %v)", name, r.Names())
		}
		out = append(out, e)
	}
	return out, nil
}
