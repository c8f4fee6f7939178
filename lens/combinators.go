package lens

import (
	"github.com/auth-platform/optics/either"
	"github.com/auth-platform/optics/field"
	"github.com/auth-platform/optics/option"
	"github.com/auth-platform/optics/set"
	"github.com/auth-platform/optics/stream"
	"github.com/auth-platform/optics/tuple"
)

// Identity returns the lens that transforms a structure with the
// transformation itself.
func Identity[S any]() SelfLens[S, S] {
	return SelfLens[S, S]{
		Lens: Lens[S, S, S, S]{
			run:     func(f func(S) S) func(S) S { return f },
			partial: func(f func(S) option.Option[S]) func(S) option.Option[S] { return f },
			multi:   func(f func(S) []S) func(S) []S { return f },
		},
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// SliceElements returns a lens that maps a transformation over every
// element of a slice.
func SliceElements[A, B any]() Lens[[]A, []B, A, B] {
	return New(func(f func(A) B) func([]A) []B {
		return func(s []A) []B {
			result := make([]B, len(s))
			for i, a := range s {
				result[i] = f(a)
			}
			return result
		}
	})
}

// SliceReduce returns a lens that focuses the pairwise combining steps
// of a reduction: the transformation maps the running value to the
// function folding in the next element, and the whole slice reduces to
// an optional value, None when the slice is empty.
func SliceReduce[A any]() Lens[[]A, option.Option[A], A, func(A) A] {
	run := func(f func(A) func(A) A) func([]A) option.Option[A] {
		return func(s []A) option.Option[A] {
			if len(s) == 0 {
				return option.None[A]()
			}
			acc := s[0]
			for _, a := range s[1:] {
				acc = f(acc)(a)
			}
			return option.Some(acc)
		}
	}
	// The focused values are step functions, so the derived channels
	// would invoke zero-valued steps; the reduction installs its own.
	return Lens[[]A, option.Option[A], A, func(A) A]{
		run: run,
		partial: func(f func(A) option.Option[func(A) A]) func([]A) option.Option[option.Option[A]] {
			return func(s []A) option.Option[option.Option[A]] {
				if len(s) == 0 {
					return option.Some(option.None[A]())
				}
				acc := s[0]
				for _, a := range s[1:] {
					step := f(acc)
					if step.IsNone() {
						return option.None[option.Option[A]]()
					}
					acc = step.Unwrap()(a)
				}
				return option.Some(option.Some(acc))
			}
		},
		multi: func(f func(A) []func(A) A) func([]A) []option.Option[A] {
			return func(s []A) []option.Option[A] {
				var result []option.Option[A]
				if len(s) < 2 {
					// The reduction never consults the transformation.
					return result
				}
				for i := 0; ; i++ {
					acc := s[0]
					exhausted := false
					for _, a := range s[1:] {
						steps := f(acc)
						if i >= len(steps) {
							exhausted = true
							break
						}
						acc = steps[i](a)
					}
					if exhausted {
						return result
					}
					result = append(result, option.Some(acc))
				}
			}
		},
	}
}

// MapValues returns a lens that maps a transformation over every value
// of a map, keeping its keys.
func MapValues[K comparable, V, W any]() Lens[map[K]V, map[K]W, V, W] {
	return New(func(f func(V) W) func(map[K]V) map[K]W {
		return func(m map[K]V) map[K]W {
			result := make(map[K]W, len(m))
			for k, v := range m {
				result[k] = f(v)
			}
			return result
		}
	})
}

// MapAt returns a lens focusing the value at a map key, reading the
// given default when the key is missing. Writing copies the map.
func MapAt[K comparable, V any](key K, defaultVal V) SelfLens[map[K]V, V] {
	get := func(m map[K]V) V {
		if v, ok := m[key]; ok {
			return v
		}
		return defaultVal
	}
	set := func(m map[K]V, v V) map[K]V {
		result := make(map[K]V, len(m)+1)
		for k, val := range m {
			result[k] = val
		}
		result[key] = v
		return result
	}
	return SelfLens[map[K]V, V]{
		Lens: New(func(f func(V) V) func(map[K]V) map[K]V {
			return func(m map[K]V) map[K]V {
				return set(m, f(get(m)))
			}
		}),
		get: get,
		set: set,
	}
}

// SliceAt returns a lens focusing the element at a slice index, reading
// the given default when the index is out of range. Writing copies the
// slice and leaves out-of-range indexes unchanged.
func SliceAt[T any](index int, defaultVal T) SelfLens[[]T, T] {
	get := func(s []T) T {
		if index >= 0 && index < len(s) {
			return s[index]
		}
		return defaultVal
	}
	set := func(s []T, v T) []T {
		if index < 0 || index >= len(s) {
			return s
		}
		result := make([]T, len(s))
		copy(result, s)
		result[index] = v
		return result
	}
	return SelfLens[[]T, T]{
		Lens: New(func(f func(T) T) func([]T) []T {
			return func(s []T) []T {
				return set(s, f(get(s)))
			}
		}),
		get: get,
		set: set,
	}
}

// SetElements returns a lens that maps a transformation over every
// element of a set.
func SetElements[A, B comparable]() Lens[*set.Set[A], *set.Set[B], A, B] {
	return New(func(f func(A) B) func(*set.Set[A]) *set.Set[B] {
		return func(s *set.Set[A]) *set.Set[B] {
			return set.Map(s, f)
		}
	})
}

// StreamElements returns a lens that maps a transformation over every
// element of a stream, lazily. Its Optional and List lifts force the
// stream to decide presence and cardinality, so they terminate only on
// finite streams.
func StreamElements[A, B any]() Lens[*stream.Stream[A], *stream.Stream[B], A, B] {
	return Lens[*stream.Stream[A], *stream.Stream[B], A, B]{
		run: func(f func(A) B) func(*stream.Stream[A]) *stream.Stream[B] {
			return func(s *stream.Stream[A]) *stream.Stream[B] {
				return stream.Map(s, f)
			}
		},
		partial: func(f func(A) option.Option[B]) func(*stream.Stream[A]) option.Option[*stream.Stream[B]] {
			return func(s *stream.Stream[A]) option.Option[*stream.Stream[B]] {
				var out []B
				for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
					r := f(cur.Head().Unwrap())
					if r.IsNone() {
						return option.None[*stream.Stream[B]]()
					}
					out = append(out, r.Unwrap())
				}
				return option.Some(stream.FromSlice(out))
			}
		},
		multi: func(f func(A) []B) func(*stream.Stream[A]) []*stream.Stream[B] {
			return func(s *stream.Stream[A]) []*stream.Stream[B] {
				elems := s.Collect()
				if len(elems) == 0 {
					return nil
				}
				width := -1
				variants := make([][]B, len(elems))
				for i, a := range elems {
					variants[i] = f(a)
					if width < 0 || len(variants[i]) < width {
						width = len(variants[i])
					}
				}
				result := make([]*stream.Stream[B], 0, width)
				for i := 0; i < width; i++ {
					row := make([]B, len(elems))
					for j := range elems {
						row[j] = variants[j][i]
					}
					result = append(result, stream.FromSlice(row))
				}
				return result
			}
		},
	}
}

// StreamFlatMap returns a lens that focuses each stream element as a
// whole stream of replacements, concatenating them lazily. As with
// StreamElements, the Optional and List lifts are strict.
func StreamFlatMap[A, B any]() Lens[*stream.Stream[A], *stream.Stream[B], A, *stream.Stream[B]] {
	return Lens[*stream.Stream[A], *stream.Stream[B], A, *stream.Stream[B]]{
		run: func(f func(A) *stream.Stream[B]) func(*stream.Stream[A]) *stream.Stream[B] {
			return func(s *stream.Stream[A]) *stream.Stream[B] {
				return stream.FlatMap(s, f)
			}
		},
		partial: func(f func(A) option.Option[*stream.Stream[B]]) func(*stream.Stream[A]) option.Option[*stream.Stream[B]] {
			return func(s *stream.Stream[A]) option.Option[*stream.Stream[B]] {
				var out []B
				for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
					r := f(cur.Head().Unwrap())
					if r.IsNone() {
						return option.None[*stream.Stream[B]]()
					}
					out = append(out, r.Unwrap().Collect()...)
				}
				return option.Some(stream.FromSlice(out))
			}
		},
		multi: func(f func(A) []*stream.Stream[B]) func(*stream.Stream[A]) []*stream.Stream[B] {
			return func(s *stream.Stream[A]) []*stream.Stream[B] {
				elems := s.Collect()
				if len(elems) == 0 {
					return nil
				}
				width := -1
				variants := make([][]*stream.Stream[B], len(elems))
				for i, a := range elems {
					variants[i] = f(a)
					if width < 0 || len(variants[i]) < width {
						width = len(variants[i])
					}
				}
				result := make([]*stream.Stream[B], 0, width)
				for i := 0; i < width; i++ {
					var row []B
					for j := range elems {
						row = append(row, variants[j][i].Collect()...)
					}
					result = append(result, stream.FromSlice(row))
				}
				return result
			}
		},
	}
}

// OptionElement returns a lens that maps a transformation over an
// optional value. An empty container stays empty: its Optional lift
// reports the untouched container as a present result.
func OptionElement[A, B any]() Lens[option.Option[A], option.Option[B], A, B] {
	return New(func(f func(A) B) func(option.Option[A]) option.Option[B] {
		return func(o option.Option[A]) option.Option[B] {
			return option.Map(o, f)
		}
	})
}

// OptionFlatMap returns a lens that focuses an optional element as a
// whole optional replacement.
func OptionFlatMap[A, B any]() Lens[option.Option[A], option.Option[B], A, option.Option[B]] {
	return New(func(f func(A) option.Option[B]) func(option.Option[A]) option.Option[B] {
		return func(o option.Option[A]) option.Option[B] {
			return option.FlatMap(o, f)
		}
	})
}

// OptionSome behaves like OptionElement under Apply, but requires the
// focused element to exist: its Optional lift treats an empty container
// as an absent result rather than passing it through.
func OptionSome[A, B any]() Lens[option.Option[A], option.Option[B], A, B] {
	run := func(f func(A) B) func(option.Option[A]) option.Option[B] {
		return func(o option.Option[A]) option.Option[B] {
			return option.Map(o, f)
		}
	}
	return Lens[option.Option[A], option.Option[B], A, B]{
		run: run,
		partial: func(f func(A) option.Option[B]) func(option.Option[A]) option.Option[option.Option[B]] {
			return func(o option.Option[A]) option.Option[option.Option[B]] {
				if o.IsNone() {
					return option.None[option.Option[B]]()
				}
				r := f(o.Unwrap())
				if r.IsNone() {
					return option.None[option.Option[B]]()
				}
				return option.Some(option.Some(r.Unwrap()))
			}
		},
		multi: deriveMulti(run),
	}
}

// FuncReturn returns a lens focusing the return value of a function, so
// a transformation of results becomes a transformation of functions.
// Application is deferred until the produced function runs, so the
// Optional lift always reports a present function and the List lift
// yields no variants.
func FuncReturn[A, B, C any]() Lens[func(A) B, func(A) C, B, C] {
	return New(func(m func(B) C) func(func(A) B) func(A) C {
		return func(f func(A) B) func(A) C {
			return func(a A) C {
				return m(f(a))
			}
		}
	})
}

// FuncArg returns a lens focusing the argument of a function by
// precomposition. Like FuncReturn, application is deferred.
func FuncArg[A, B, C any]() Lens[func(A) B, func(C) B, C, A] {
	return New(func(m func(C) A) func(func(A) B) func(C) B {
		return func(f func(A) B) func(C) B {
			return func(c C) B {
				return f(m(c))
			}
		}
	})
}

// PairBoth returns a lens focusing both values of a uniform pair at
// once, transforming the first before the second.
func PairBoth[A, B any]() Lens[tuple.Pair[A, A], tuple.Pair[B, B], A, B] {
	return New(func(f func(A) B) func(tuple.Pair[A, A]) tuple.Pair[B, B] {
		return func(p tuple.Pair[A, A]) tuple.Pair[B, B] {
			return tuple.OnBoth(p, f)
		}
	})
}

// PairFirst returns a lens focusing the first value of a pair.
func PairFirst[A, B, C any]() Lens[tuple.Pair[A, B], tuple.Pair[C, B], A, C] {
	return New(func(f func(A) C) func(tuple.Pair[A, B]) tuple.Pair[C, B] {
		return func(p tuple.Pair[A, B]) tuple.Pair[C, B] {
			return tuple.MapFirst(p, f)
		}
	})
}

// PairSecond returns a lens focusing the second value of a pair.
func PairSecond[A, B, C any]() Lens[tuple.Pair[A, B], tuple.Pair[A, C], B, C] {
	return New(func(f func(B) C) func(tuple.Pair[A, B]) tuple.Pair[A, C] {
		return func(p tuple.Pair[A, B]) tuple.Pair[A, C] {
			return tuple.MapSecond(p, f)
		}
	})
}

// EitherLeft returns a lens focusing the left alternative of a union.
// A right-valued union passes through untouched.
func EitherLeft[L, R, M any]() Lens[either.Either[L, R], either.Either[M, R], L, M] {
	return New(func(f func(L) M) func(either.Either[L, R]) either.Either[M, R] {
		return func(e either.Either[L, R]) either.Either[M, R] {
			return either.MapLeft(e, f)
		}
	})
}

// EitherRight returns a lens focusing the right alternative of a union.
// A left-valued union passes through untouched.
func EitherRight[L, R, M any]() Lens[either.Either[L, R], either.Either[L, M], R, M] {
	return New(func(f func(R) M) func(either.Either[L, R]) either.Either[L, M] {
		return func(e either.Either[L, R]) either.Either[L, M] {
			return either.MapRight(e, f)
		}
	})
}

// Split combines a lens focusing an A and a lens focusing a B over the
// same structure into a lens focusing both as a pair. Applying it reads
// both parts, transforms the pair, then writes the first part followed
// by the second; when the parts alias each other the second write wins.
func Split[S, A, B any](first SelfLens[S, A], second SelfLens[S, B]) SelfLens[S, tuple.Pair[A, B]] {
	getFirst, setFirst := first.Getter(), first.Setter()
	getSecond, setSecond := second.Getter(), second.Setter()
	get := func(s S) tuple.Pair[A, B] {
		return tuple.NewPair(getFirst(s), getSecond(s))
	}
	set := func(s S, p tuple.Pair[A, B]) S {
		return setSecond(setFirst(s, p.First), p.Second)
	}
	return SelfLens[S, tuple.Pair[A, B]]{
		Lens: Lens[S, S, tuple.Pair[A, B], tuple.Pair[A, B]]{
			run: func(f func(tuple.Pair[A, B]) tuple.Pair[A, B]) func(S) S {
				return func(s S) S {
					return set(s, f(get(s)))
				}
			},
			partial: func(f func(tuple.Pair[A, B]) option.Option[tuple.Pair[A, B]]) func(S) option.Option[S] {
				return func(s S) option.Option[S] {
					r := f(get(s))
					if r.IsNone() {
						return option.None[S]()
					}
					return option.Some(set(s, r.Unwrap()))
				}
			},
			multi: func(f func(tuple.Pair[A, B]) []tuple.Pair[A, B]) func(S) []S {
				return func(s S) []S {
					candidates := f(get(s))
					result := make([]S, 0, len(candidates))
					for _, p := range candidates {
						result = append(result, set(s, p))
					}
					return result
				}
			},
			mutating: first.IsMutating() || second.IsMutating(),
		},
		get: get,
		set: set,
	}
}

// SplitFields is Split over two field references of the same structure,
// writing in place.
func SplitFields[S, A, B any](first func(S) field.Ref[A], second func(S) field.Ref[B]) SelfLens[S, tuple.Pair[A, B]] {
	return Split(ForField(first), ForField(second))
}

// BothOf combines two lenses focusing values of the same type within a
// structure into a lens focusing both at once. Both parts are read
// before either is written, with Split's write order.
func BothOf[S, A any](first, second SelfLens[S, A]) SelfLens[S, A] {
	return AsSelf(Focus(Split(first, second).Lens, PairBoth[A, A]()))
}

// BothOfFields is BothOf over two field references of the same
// structure, writing in place.
func BothOfFields[S, A any](first, second func(S) field.Ref[A]) SelfLens[S, A] {
	return BothOf(ForField(first), ForField(second))
}
