// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

// Descriptor is the immutable description of a validator.
//
// Constructors copy the descriptor into the validator they build, so mutating
// a Descriptor after registration has no effect on existing validators.
//
// Which fields are required depends on the variant:
//   - [NewCheck] and [NewAllowListCheck] require Func, Singular, and Plural
//   - [NewTransform] and [NewTransformAndReplace] require only Func
type Descriptor[T any] struct {
	// Name identifies the validator in logs and errors (e.g., "file-exists").
	Name string

	// Func is the predicate or transform applied to each value.
	Func Func[string, T]

	// Singular is the message used when a scalar argument is rejected.
	Singular string

	// Plural is the message used when a list argument is rejected.
	Plural string
}

// requireFunc returns a [*ConfigurationError] if Func is unset.
func (d *Descriptor[T]) requireFunc() error {
	if d.Func == nil {
		return newMissingAttributeError(d.Name, "Func")
	}
	if fa, ok := d.Func.(FuncAdapter[string, T]); ok && fa == nil {
		return newMissingAttributeError(d.Name, "Func")
	}
	return nil
}

// requireMessages returns a [*ConfigurationError] if Func or a message is unset.
func (d *Descriptor[T]) requireMessages() error {
	if err := d.requireFunc(); err != nil {
		return err
	}
	if d.Singular == "" {
		return newMissingAttributeError(d.Name, "Singular")
	}
	if d.Plural == "" {
		return newMissingAttributeError(d.Name, "Plural")
	}
	return nil
}

// message returns the message matching the input cardinality.
//
// When the matching message is unset, it falls back to a generic
// message mentioning the validator name.
func (d *Descriptor[T]) message(list bool) string {
	msg := d.Singular
	if list {
		msg = d.Plural
	}
	if msg != "" {
		return msg
	}
	if d.Name != "" {
		return "cannot apply " + d.Name
	}
	return "invalid value"
}
