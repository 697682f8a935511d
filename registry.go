// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"slices"

	"github.com/samber/lo"
)

// Entry describes a named validator that a [Registry] can build on demand.
type Entry struct {
	// Name is the unique name (e.g., "file-exists").
	Name string

	// Help is the one-line semantic shown to users (e.g., "file exists").
	Help string

	// New builds the validator.
	//
	// The allowed argument carries the allow-list for allow-list
	// validators and is ignored by the others.
	New func(cfg *Config, logger SLogger, allowed []string) (Action, error)
}

// CheckEntry returns an [Entry] building a [*Check] from desc.
func CheckEntry(help string, desc Descriptor[bool]) Entry {
	return Entry{
		Name: desc.Name,
		Help: help,
		New: func(cfg *Config, logger SLogger, _ []string) (Action, error) {
			return AsAction(NewCheck(cfg, desc, logger))
		},
	}
}

// TransformEntry returns an [Entry] building a [*Transform] from desc.
func TransformEntry(help string, desc Descriptor[Unit]) Entry {
	return Entry{
		Name: desc.Name,
		Help: help,
		New: func(cfg *Config, logger SLogger, _ []string) (Action, error) {
			return AsAction(NewTransform(cfg, desc, logger))
		},
	}
}

// ReplaceEntry returns an [Entry] building a [*TransformAndReplace] from desc.
func ReplaceEntry(help string, desc Descriptor[string]) Entry {
	return Entry{
		Name: desc.Name,
		Help: help,
		New: func(cfg *Config, logger SLogger, _ []string) (Action, error) {
			return AsAction(NewTransformAndReplace(cfg, desc, logger))
		},
	}
}

// AllowListEntry returns an [Entry] building an [*AllowListCheck] from desc
// using the allow-list passed to [Entry.New].
func AllowListEntry(help string, desc Descriptor[string]) Entry {
	return Entry{
		Name: desc.Name,
		Help: help,
		New: func(cfg *Config, logger SLogger, allowed []string) (Action, error) {
			return AsAction(NewAllowListCheck(cfg, desc, allowed, logger))
		},
	}
}

// AsAction converts the result of a validator constructor into the
// result of [Entry.New], returning a nil [Action] on error rather than
// a typed nil pointer.
func AsAction[T Action](op T, err error) (Action, error) {
	if err != nil {
		return nil, err
	}
	return op, nil
}

// Registry maps validator names to entries.
//
// The zero value is not ready to use; construct using [NewRegistry].
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty [*Registry].
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds entries to the registry.
//
// It returns a [*ConfigurationError] for an entry without a name, without a
// constructor, or whose name is already registered. Entries preceding the
// offending one remain registered.
func (r *Registry) Register(entries ...Entry) error {
	for _, e := range entries {
		if e.Name == "" {
			return newMissingAttributeError("", "Name")
		}
		if e.New == nil {
			return newMissingAttributeError(e.Name, "New")
		}
		if _, found := r.entries[e.Name]; found {
			return &ConfigurationError{Name: e.Name, Field: "Name", Reason: "already registered"}
		}
		r.entries[e.Name] = e
	}
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, found := r.entries[name]
	return e, found
}

// Names returns the sorted names of all the registered entries.
func (r *Registry) Names() []string {
	names := lo.Keys(r.entries)
	slices.Sort(names)
	return names
}
