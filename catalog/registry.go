package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Demo runs one pattern demonstration and writes its output to w.
type Demo func(w io.Writer) error

// ErrDemoPanic is returned by Run when a demo panics.
var ErrDemoPanic = errors.New("catalog: panic during demo")

// DuplicateNameError is returned when a name is registered twice.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	// Example: catalog: duplicate demo "strategy"
	return "catalog: duplicate demo " + strconv.Quote(e.Name)
}

// NilDemoError is returned when a nil Demo is registered.
type NilDemoError struct{ Name string }

// Error implements the error interface.
func (e NilDemoError) Error() string {
	return "catalog: nil demo for " + strconv.Quote(e.Name)
}

// MissingDemoError is returned when a name is not registered.
type MissingDemoError struct{ Name string }

// Error implements the error interface.
func (e MissingDemoError) Error() string {
	// Example: catalog: demo "observer" missing
	return "catalog: demo " + strconv.Quote(e.Name) + " missing"
}

// Registry maps demo names to demos.
type Registry struct {
	items map[string]Demo
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Demo{}}
}

// Provide registers demo under name.
func (r *Registry) Provide(name string, demo Demo) error {
	if demo == nil {
		return NilDemoError{Name: name}
	}
	if _, exists := r.items[name]; exists {
		return DuplicateNameError{Name: name}
	}
	r.items[name] = demo
	return nil
}

// MustProvide is Provide for static wiring; it panics on error and returns r for chaining.
func (r *Registry) MustProvide(name string, demo Demo) *Registry {
	if err := r.Provide(name, demo); err != nil {
		panic(err)
	}
	return r
}

// Get returns the demo if present.
func (r *Registry) Get(name string) (Demo, bool) {
	d, ok := r.items[name]
	return d, ok
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named demo. Panics inside the demo become ErrDemoPanic.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	d, ok := r.Get(name)
	if !ok {
		return MissingDemoError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
	}()

	return d(w)
}
