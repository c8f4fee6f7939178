package lens

import (
	"github.com/auth-platform/optics/field"
	"github.com/auth-platform/optics/option"
)

// SelfLens is a lens whose whole and part transformations keep their
// types, the Lens[S, S, A, A] shape of a member update. It adds the
// terminal operations that turn a lensing chain into plain getters,
// setters and update scripts.
type SelfLens[S, A any] struct {
	Lens[S, S, A, A]

	// Direct accessors, installed by constructors that know them.
	// When nil they are recovered through the transformation channel.
	get func(S) A
	set func(S, A) S
}

// AsSelf wraps a lens whose whole and part transformations keep their
// types as a SelfLens.
func AsSelf[S, A any](l Lens[S, S, A, A]) SelfLens[S, A] {
	return SelfLens[S, A]{Lens: l}
}

// FocusSelf composes two self lenses into a self lens.
func FocusSelf[S, A, B any](outer SelfLens[S, A], inner SelfLens[A, B]) SelfLens[S, B] {
	composed := SelfLens[S, B]{Lens: Focus(outer.Lens, inner.Lens)}
	if outer.get != nil && inner.get != nil {
		outerGet, innerGet := outer.get, inner.get
		composed.get = func(s S) B {
			return innerGet(outerGet(s))
		}
	}
	if outer.get != nil && outer.set != nil && inner.set != nil {
		outerGet, outerSet, innerSet := outer.get, outer.set, inner.set
		composed.set = func(s S, val B) S {
			return outerSet(s, innerSet(outerGet(s), val))
		}
	}
	return composed
}

// FocusField narrows a self lens onto a field of the focused part,
// writing in place.
func FocusField[S, A, B any](outer SelfLens[S, A], obtain func(A) field.Ref[B]) SelfLens[S, B] {
	return FocusSelf(outer, ForField(obtain))
}

// Getter forgets how the lens writes and returns a plain getter for the
// focused part. When several parts are focused the last one read wins;
// when none is, the zero value comes back.
func (l SelfLens[S, A]) Getter() func(S) A {
	if l.get != nil {
		return l.get
	}
	return func(s S) A {
		var captured A
		l.run(func(a A) A {
			captured = a
			return a
		})(s)
		return captured
	}
}

// Setter forgets how the lens reads and returns a plain setter replacing
// the focused part.
func (l SelfLens[S, A]) Setter() func(S, A) S {
	if l.set != nil {
		return l.set
	}
	return func(s S, val A) S {
		return l.run(func(A) A { return val })(s)
	}
}

// Set is the terminal operation returning a script that sets the focused
// part to a constant value, ignoring its current value.
func (l SelfLens[S, A]) Set(val A) func(S) S {
	setter := l.Setter()
	return func(s S) S {
		return setter(s, val)
	}
}

// ThenSet is the intermediate operation that sets the focused part to the
// given value before the rest of the lensing chain sees it.
func (l SelfLens[S, A]) ThenSet(val A) SelfLens[S, A] {
	setter := l.Setter()
	run := func(f func(A) A) func(S) S {
		return func(s S) S {
			return l.run(f)(setter(s, val))
		}
	}
	return SelfLens[S, A]{
		Lens: Lens[S, S, A, A]{
			run: run,
			partial: func(f func(A) option.Option[A]) func(S) option.Option[S] {
				return func(s S) option.Option[S] {
					return l.partial(f)(setter(s, val))
				}
			},
			multi:    deriveMulti(run),
			mutating: l.mutating,
		},
	}
}

// Perform is the terminal operation returning a script that runs a
// side-effecting action on the focused part and keeps the structure as
// the lens rebuilds it.
func (l SelfLens[S, A]) Perform(action func(A)) func(S) S {
	return l.run(func(a A) A {
		action(a)
		return a
	})
}

// ListCloned is List for lenses that write in place. cloner must produce
// a copy of the structure whose lensed parts are fully independent of the
// original, and should be the identity for pure structures. Each
// candidate value is written to its own clone, so the resulting lens is
// pure from the caller's point of view.
func (l SelfLens[S, A]) ListCloned(cloner func(S) S) Lens[S, []S, A, []A] {
	getter, setter := l.Getter(), l.Setter()
	return New(func(f func(A) []A) func(S) []S {
		return func(s S) []S {
			candidates := f(getter(s))
			result := make([]S, 0, len(candidates))
			for _, a := range candidates {
				result = append(result, setter(cloner(s), a))
			}
			return result
		}
	})
}
