// Package stream provides lazy, potentially infinite sequences with memoization.
package stream

import (
	"sync"

	"github.com/auth-platform/optics/option"
	"github.com/auth-platform/optics/tuple"
)

// Stream is a lazily evaluated sequence of values. Tails are computed at
// most once. A nil *Stream is treated as empty.
type Stream[T any] struct {
	head     T
	tail     func() *Stream[T]
	tailOnce sync.Once
	tailVal  *Stream[T]
	empty    bool
}

// Empty returns an empty stream.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{empty: true}
}

// Cons creates a stream with head and lazy tail.
func Cons[T any](head T, tail func() *Stream[T]) *Stream[T] {
	return &Stream[T]{head: head, tail: tail}
}

// FromSlice creates a stream of the slice's elements.
func FromSlice[T any](slice []T) *Stream[T] {
	if len(slice) == 0 {
		return Empty[T]()
	}
	return Cons(slice[0], func() *Stream[T] {
		return FromSlice(slice[1:])
	})
}

// Of creates a stream of the given elements.
func Of[T any](elements ...T) *Stream[T] {
	return FromSlice(elements)
}

// Iterate creates an infinite stream from a seed and a step function.
func Iterate[T any](seed T, fn func(T) T) *Stream[T] {
	return Cons(seed, func() *Stream[T] {
		return Iterate(fn(seed), fn)
	})
}

// Generate creates an infinite stream from a generator function.
func Generate[T any](gen func() T) *Stream[T] {
	return Cons(gen(), func() *Stream[T] {
		return Generate(gen)
	})
}

// IsEmpty returns true if the stream has no elements.
func (s *Stream[T]) IsEmpty() bool {
	return s == nil || s.empty
}

// Head returns the first element.
func (s *Stream[T]) Head() option.Option[T] {
	if s.IsEmpty() {
		return option.None[T]()
	}
	return option.Some(s.head)
}

// Tail returns the rest of the stream (memoized).
func (s *Stream[T]) Tail() *Stream[T] {
	if s.IsEmpty() || s.tail == nil {
		return Empty[T]()
	}
	s.tailOnce.Do(func() {
		s.tailVal = s.tail()
	})
	return s.tailVal
}

// Filter keeps elements matching the predicate.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	if s.IsEmpty() {
		return Empty[T]()
	}
	if pred(s.head) {
		return Cons(s.head, func() *Stream[T] {
			return s.Tail().Filter(pred)
		})
	}
	return s.Tail().Filter(pred)
}

// Take returns the stream of the first n elements.
func (s *Stream[T]) Take(n int) *Stream[T] {
	if s.IsEmpty() || n <= 0 {
		return Empty[T]()
	}
	return Cons(s.head, func() *Stream[T] {
		return s.Tail().Take(n - 1)
	})
}

// Drop returns the stream without its first n elements.
func (s *Stream[T]) Drop(n int) *Stream[T] {
	if s.IsEmpty() || n <= 0 {
		return s
	}
	return s.Tail().Drop(n - 1)
}

// Collect materializes the stream into a slice.
func (s *Stream[T]) Collect() []T {
	var result []T
	for !s.IsEmpty() {
		result = append(result, s.head)
		s = s.Tail()
	}
	return result
}

// Map transforms stream elements lazily.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return Cons(fn(s.head), func() *Stream[U] {
		return Map(s.Tail(), fn)
	})
}

// FlatMap maps each element to a stream and concatenates the results lazily.
func FlatMap[T, U any](s *Stream[T], fn func(T) *Stream[U]) *Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return concat(fn(s.head), func() *Stream[U] {
		return FlatMap(s.Tail(), fn)
	})
}

// Zip combines two streams element-wise, lazily; the result ends with
// the shorter stream.
func Zip[T, U any](s1 *Stream[T], s2 *Stream[U]) *Stream[tuple.Pair[T, U]] {
	if s1.IsEmpty() || s2.IsEmpty() {
		return Empty[tuple.Pair[T, U]]()
	}
	return Cons(tuple.NewPair(s1.head, s2.head), func() *Stream[tuple.Pair[T, U]] {
		return Zip(s1.Tail(), s2.Tail())
	})
}

// Fold reduces the stream strictly to a single value.
func Fold[T, U any](s *Stream[T], initial U, fn func(U, T) U) U {
	result := initial
	for !s.IsEmpty() {
		result = fn(result, s.head)
		s = s.Tail()
	}
	return result
}

// concat joins a stream with a lazy continuation.
func concat[T any](s *Stream[T], cont func() *Stream[T]) *Stream[T] {
	if s.IsEmpty() {
		return cont()
	}
	return Cons(s.head, func() *Stream[T] {
		return concat(s.Tail(), cont)
	})
}
