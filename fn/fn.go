// Package fn provides small function combinators.
package fn

// Identity returns its input unchanged.
func Identity[T any](value T) T {
	return value
}

// Const returns a function that always returns the given value.
func Const[T, U any](value T) func(U) T {
	return func(_ U) T {
		return value
	}
}

// Chain composes endofunctions left to right into a single function.
func Chain[S any](funcs ...func(S) S) func(S) S {
	return func(value S) S {
		result := value
		for _, f := range funcs {
			result = f(result)
		}
		return result
	}
}

// Pipe applies functions left to right to a starting value.
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose creates a function that applies fns right to left.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Comp composes two functions of arbitrary types, applying f first.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}

// Curry converts a two-argument function to curried form.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry converts a curried function to two-argument form.
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}
