package lens

import (
	"github.com/auth-platform/optics/field"
	"github.com/auth-platform/optics/option"
)

// ForField builds the mutating lens for a field reachable through obtain:
// applying it transforms the referenced value in place and hands back the
// same container. Its Optional lift writes only when the transformation
// produces a value.
func ForField[A, B any](obtain func(A) field.Ref[B]) SelfLens[A, B] {
	run := func(f func(B) B) func(A) A {
		return func(container A) A {
			field.Transform(obtain(container), f)
			return container
		}
	}
	return SelfLens[A, B]{
		Lens: Lens[A, A, B, B]{
			run: run,
			partial: func(f func(B) option.Option[B]) func(A) option.Option[A] {
				return func(container A) option.Option[A] {
					ref := obtain(container)
					r := f(ref.Get())
					if r.IsNone() {
						return option.None[A]()
					}
					ref.Set(r.Unwrap())
					return option.Some(container)
				}
			},
			// multi stays nil: List rejects mutating lenses before it
			// could ever run.
			mutating: true,
		},
		get: func(container A) B {
			return obtain(container).Get()
		},
		set: func(container A, val B) A {
			obtain(container).Set(val)
			return container
		},
	}
}
