// Package lens provides composable optics for transforming parts of structures.
package lens

import "github.com/auth-platform/optics/option"

// Lens turns a transformation of a focused part, func(A) B, into a
// transformation of the whole, func(S) T.
//
// Every lens carries three aligned channels: the plain transformation,
// an absence-aware variant backing Optional, and a multi-valued variant
// backing List. Lenses built with New derive the latter two from the
// plain channel; combinators with sharper semantics install their own.
// A lens is either pure, rebuilding structures on application, or
// mutating, writing through field references (see ForField).
type Lens[S, T, A, B any] struct {
	run      func(func(A) B) func(S) T
	partial  func(func(A) option.Option[B]) func(S) option.Option[T]
	multi    func(func(A) []B) func(S) []T
	mutating bool
}

// New creates a pure lens from its plain transformation channel.
func New[S, T, A, B any](run func(func(A) B) func(S) T) Lens[S, T, A, B] {
	return Lens[S, T, A, B]{
		run:     run,
		partial: derivePartial(run),
		multi:   deriveMulti(run),
	}
}

// Apply yields the whole-structure transformation for the given part
// transformation.
func (l Lens[S, T, A, B]) Apply(f func(A) B) func(S) T {
	return l.run(f)
}

// IsMutating reports whether applying the lens writes through field
// references instead of building new structures.
func (l Lens[S, T, A, B]) IsMutating() bool {
	return l.mutating
}

// Focus composes two lenses: the result transforms the outer whole by
// transforming the part the inner lens focuses within the outer focus.
// It behaves like a "." operator for reaching into nested structures,
// and is associative.
func Focus[S, T, A, B, C, D any](outer Lens[S, T, A, B], inner Lens[A, B, C, D]) Lens[S, T, C, D] {
	return Lens[S, T, C, D]{
		run: func(f func(C) D) func(S) T {
			return outer.run(inner.run(f))
		},
		partial: func(f func(C) option.Option[D]) func(S) option.Option[T] {
			return outer.partial(inner.partial(f))
		},
		multi: func(f func(C) []D) func(S) []T {
			return outer.multi(inner.multi(f))
		},
		mutating: outer.mutating || inner.mutating,
	}
}

// Within is Focus with the arguments swapped: Within(inner, outer)
// equals Focus(outer, inner).
func Within[S, T, A, B, C, D any](inner Lens[A, B, C, D], outer Lens[S, T, A, B]) Lens[S, T, C, D] {
	return Focus(outer, inner)
}

// Optional lifts a lens to transformations that may produce no result.
// A present part result yields a present whole; an absent part result
// makes the whole result absent, and for mutating lenses nothing is
// written on the absent path.
func Optional[S, T, A, B any](l Lens[S, T, A, B]) Lens[S, option.Option[T], A, option.Option[B]] {
	return Lens[S, option.Option[T], A, option.Option[B]]{
		run:      l.partial,
		partial:  derivePartial(l.partial),
		multi:    deriveMulti(l.partial),
		mutating: l.mutating,
	}
}

// List lifts a lens to transformations producing any number of
// candidate results, yielding one transformed whole per candidate.
// When several parts are focused at once, the count is the smallest
// candidate count among them.
//
// List panics on mutating lenses, which cannot replay writes against
// independent structures; use SelfLens.ListCloned with an explicit
// cloner instead.
func List[S, T, A, B any](l Lens[S, T, A, B]) Lens[S, []T, A, []B] {
	if l.mutating {
		panic("called List on a mutating lens; use ListCloned with an explicit cloner")
	}
	return Lens[S, []T, A, []B]{
		run:     l.multi,
		partial: derivePartial(l.multi),
		multi:   deriveMulti(l.multi),
	}
}

// derivePartial derives the absence-aware channel from a plain channel.
// The first absent part result poisons the application: later parts are
// not consulted, zero values stand in so the traversal can finish, and
// the computed whole is discarded.
func derivePartial[S, T, A, B any](run func(func(A) B) func(S) T) func(func(A) option.Option[B]) func(S) option.Option[T] {
	return func(f func(A) option.Option[B]) func(S) option.Option[T] {
		return func(s S) option.Option[T] {
			absent := false
			result := run(func(a A) B {
				if absent {
					var zero B
					return zero
				}
				r := f(a)
				if r.IsNone() {
					absent = true
					var zero B
					return zero
				}
				return r.Unwrap()
			})(s)
			if absent {
				return option.None[T]()
			}
			return option.Some(result)
		}
	}
}

// deriveMulti derives the multi-valued channel from a plain channel by
// replaying the transformation once per candidate index. A replay that
// runs out of candidates ends the output, as does one that never
// consults the transformation at all, so lenses focusing nothing yield
// no variants instead of looping.
func deriveMulti[S, T, A, B any](run func(func(A) B) func(S) T) func(func(A) []B) func(S) []T {
	return func(f func(A) []B) func(S) []T {
		return func(s S) []T {
			var result []T
			for i := 0; ; i++ {
				exhausted := false
				consulted := false
				t := run(func(a A) B {
					consulted = true
					if exhausted {
						var zero B
						return zero
					}
					candidates := f(a)
					if i >= len(candidates) {
						exhausted = true
						var zero B
						return zero
					}
					return candidates[i]
				})(s)
				if exhausted || !consulted {
					return result
				}
				result = append(result, t)
			}
		}
	}
}
