// SPDX-License-Identifier: MIT

package draws

import (
	"fmt"
	"slices"
	"strings"
)

// Registry resolves draw-type names to generators.
//
// The native table is immutable and shared; the user table is per registry.
// Resolution order is fixed: native first, then user. Because user names may
// never equal native names, no user entry can be shadowed.
type Registry struct {
	native    []Entry        // registration order, read-only
	nativeIdx map[string]int // name → position in native
	user      map[string]Entry
}

// NewRegistry returns a registry pre-populated with the native generators and
// an empty user table.
func NewRegistry() *Registry {
	idx := make(map[string]int, len(nativeEntries))
	for i, e := range nativeEntries {
		idx[e.Name] = i
	}

	return &Registry{
		native:    nativeEntries,
		nativeIdx: idx,
		user:      make(map[string]Entry),
	}
}

// IsNative reports whether name is a native draw type (exact, case-sensitive).
func (r *Registry) IsNative(name string) bool {
	_, ok := r.nativeIdx[name]

	return ok
}

func (r *Registry) checkUser(name string, g Generator) error {
	if name == "" || g == nil {
		return fmt.Errorf("Register(%q): %w", name, ErrInvalidGenerator)
	}
	if r.IsNative(name) {
		return fmt.Errorf("Register: %s is a reserved keyword for draws and cannot be used for user-defined generators: %w",
			name, ErrNameCollision)
	}

	return nil
}

// Register inserts or overwrites a user generator.
//
// Errors:
//   - ErrNameCollision if name is a native draw type.
//   - ErrInvalidGenerator if name is empty or g is nil.
func (r *Registry) Register(name string, g Generator, description string) error {
	if err := r.checkUser(name, g); err != nil {
		return err
	}
	r.user[name] = Entry{Name: name, Generate: g, Description: description}

	return nil
}

// RegisterAll validates every entry first and inserts them only if all pass,
// so a rejected batch leaves the user table untouched.
func (r *Registry) RegisterAll(entries []Entry) error {
	for _, e := range entries {
		if err := r.checkUser(e.Name, e.Generate); err != nil {
			return err
		}
	}
	for _, e := range entries {
		r.user[e.Name] = e
	}

	return nil
}

// Lookup returns the entry registered under name, native first.
func (r *Registry) Lookup(name string) (Entry, bool) {
	if i, ok := r.nativeIdx[name]; ok {
		return r.native[i], true
	}
	e, ok := r.user[name]

	return e, ok
}

// Resolve returns the generator for name, searching native entries first,
// then user entries.
//
// Errors: ErrUnknownDrawType, with the native and user names listed.
func (r *Registry) Resolve(name string) (Generator, error) {
	if e, ok := r.Lookup(name); ok {
		return e.Generate, nil
	}

	return nil, fmt.Errorf("%w: %s. Native types: [%s]. User defined: [%s]",
		ErrUnknownDrawType, name,
		strings.Join(r.NativeNames(), ", "),
		strings.Join(r.UserNames(), ", "))
}

// NativeNames lists native draw types in registration order.
func (r *Registry) NativeNames() []string {
	out := make([]string, len(r.native))
	for i, e := range r.native {
		out[i] = e.Name
	}

	return out
}

// UserNames lists user draw types, sorted.
func (r *Registry) UserNames() []string {
	out := make([]string, 0, len(r.user))
	for name := range r.user {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// DescribeNative returns "NAME: description" for every native entry, in
// registration order.
func (r *Registry) DescribeNative() []string {
	out := make([]string, len(r.native))
	for i, e := range r.native {
		out[i] = e.String()
	}

	return out
}
