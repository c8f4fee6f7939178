// Package field provides references to fields of structures through their accessors.
package field

// Ref is a reference to a field of a structure through its getter and setter.
type Ref[T any] interface {
	Get() T
	Set(T)
}

// RefOf constructs a Ref from explicit getter and setter functions.
func RefOf[T any](get func() T, set func(T)) Ref[T] {
	return funcRef[T]{get: get, set: set}
}

type funcRef[T any] struct {
	get func() T
	set func(T)
}

func (r funcRef[T]) Get() T    { return r.get() }
func (r funcRef[T]) Set(val T) { r.set(val) }

// Transform reads the referenced value, applies fn, writes the result back
// and returns it.
func Transform[T any](r Ref[T], fn func(T) T) T {
	result := fn(r.Get())
	r.Set(result)
	return result
}

// Field is a basic Ref implementation wrapping a plain member variable.
// If fancier accessors are needed, implement Ref directly instead.
type Field[T any] struct {
	val T
}

// New creates a Field holding the given initial value.
func New[T any](initVal T) *Field[T] {
	return &Field[T]{val: initVal}
}

// Empty creates a Field holding the zero value of T.
func Empty[T any]() *Field[T] {
	return &Field[T]{}
}

// Get returns the current value.
func (f *Field[T]) Get() T {
	return f.val
}

// Set replaces the current value.
func (f *Field[T]) Set(val T) {
	f.val = val
}
