// Package options implements generic functional options shared by the
// fitting, rendering and loading packages.
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	name string
	fn   func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// String returns the option name given to Named, or "option".
func (f *Func[T]) String() string {
	if f.name == "" {
		return "option"
	}

	return f.name
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// Named creates an option whose failures are reported under name.
func Named[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
// Errors from named options are wrapped with the option name.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			if f, ok := opt.(*Func[T]); ok && f.name != "" {
				return fmt.Errorf("%s: %w", f.name, err)
			}

			return err
		}
	}

	return nil
}
