// Package opticstest provides rapid generators for the container types
// of this module.
package opticstest

import (
	"pgregory.net/rapid"

	"github.com/auth-platform/optics/either"
	"github.com/auth-platform/optics/field"
	"github.com/auth-platform/optics/option"
	"github.com/auth-platform/optics/stream"
	"github.com/auth-platform/optics/tuple"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[option.Option[T]] {
	return rapid.Just(option.None[T]())
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right[L](rightGen.Draw(t, "right"))
		}
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left[L, R] values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right[L, R] values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Right[L](rightGen.Draw(t, "right"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[tuple.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) tuple.Pair[A, B] {
		return tuple.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}

// FieldGen generates initialized fields.
func FieldGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[*field.Field[T]] {
	return rapid.Custom(func(t *rapid.T) *field.Field[T] {
		return field.New(valueGen.Draw(t, "value"))
	})
}

// StreamGen generates finite streams with the given size range.
func StreamGen[T any](elemGen *rapid.Generator[T], minSize, maxSize int) *rapid.Generator[*stream.Stream[T]] {
	return rapid.Custom(func(t *rapid.T) *stream.Stream[T] {
		return stream.FromSlice(rapid.SliceOfN(elemGen, minSize, maxSize).Draw(t, "elems"))
	})
}
