// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package verification contains the validation functions that confirm or reject
// regex candidate matches. Every function takes the raw matched substring and
// returns a pass/fail verdict; separators such as spaces and hyphens are
// tolerated. All functions are pure and safe for concurrent use.
package verification

import (
	"errors"
	"fmt"
	"sort"
)

// Func is the contract every verification function satisfies: given a candidate
// substring matched by a regex, report whether it is a genuine instance of the
// claimed data type. Implementations must not panic on any input, including the
// empty string.
type Func func(value string) bool

// Sentinel errors returned by Registry operations.
var (
	// ErrUnknownFunction indicates a pattern referenced a verification function
	// that was never registered. This is a configuration defect in the pattern
	// catalog, not a data-validation failure.
	ErrUnknownFunction = errors.New("unknown verification function")

	// ErrDuplicateName indicates an attempt to register a name that is already
	// taken. Use RegisterOverwrite when shadowing is intended.
	ErrDuplicateName = errors.New("verification function already registered")
)

// Registry maps verification-function names to their implementations. The
// expected lifecycle is populate-once at startup, read-only afterwards; a
// Registry is safe for concurrent reads once registration has finished.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Func),
	}
}

// Register adds a verification function under the given name. Registering a
// name twice is rejected with ErrDuplicateName so that a typo in wiring cannot
// silently shadow an existing validator.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return errors.New("verification function name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("verification function %q must not be nil", name)
	}
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.funcs[name] = fn
	return nil
}

// RegisterOverwrite adds a verification function, replacing any existing
// function with the same name. Intended for callers that deliberately override
// a builtin.
func (r *Registry) RegisterOverwrite(name string, fn Func) {
	if name == "" || fn == nil {
		return
	}
	r.funcs[name] = fn
}

// MustRegister is Register for init-time wiring; it panics on error since a
// duplicate builtin name is a programming bug.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Unregister removes a function by name and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	if _, exists := r.funcs[name]; !exists {
		return false
	}
	delete(r.funcs, name)
	return true
}

// Resolve returns the function registered under name. A missing name is a
// configuration error and is surfaced to the caller rather than treated as a
// failed validation.
func (r *Registry) Resolve(name string) (Func, error) {
	fn, exists := r.funcs[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Has reports whether a function is registered under name.
func (r *Registry) Has(name string) bool {
	_, exists := r.funcs[name]
	return exists
}

// Names returns all registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry holds every builtin verification function. It is populated
// during package initialization and must be treated as read-only afterwards;
// callers that need custom functions should register them before starting any
// concurrent scanning.
var DefaultRegistry = NewRegistry()

// Resolve looks up a function in the default registry.
func Resolve(name string) (Func, error) {
	return DefaultRegistry.Resolve(name)
}

// Names lists the functions in the default registry.
func Names() []string {
	return DefaultRegistry.Names()
}
