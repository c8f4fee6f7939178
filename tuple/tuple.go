// Package tuple provides generic tuple types.
package tuple

// Pair is a generic 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new pair with swapped values.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapFirst applies fn to the first value.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies fn to the second value.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// MapBoth applies functions to both values.
func MapBoth[A, B, C, D any](p Pair[A, B], fnA func(A) C, fnB func(B) D) Pair[C, D] {
	return Pair[C, D]{First: fnA(p.First), Second: fnB(p.Second)}
}

// OnBoth applies fn to both values of a uniform pair. The first value is
// transformed before the second.
func OnBoth[A, B any](p Pair[A, A], fn func(A) B) Pair[B, B] {
	first := fn(p.First)
	second := fn(p.Second)
	return Pair[B, B]{First: first, Second: second}
}

// ForBoth runs action on both values of a uniform pair, first then second.
func ForBoth[A any](p Pair[A, A], action func(A)) {
	action(p.First)
	action(p.Second)
}

// Zip combines two slices into a slice of pairs.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	minLen := len(as)
	if len(bs) < minLen {
		minLen = len(bs)
	}

	result := make([]Pair[A, B], minLen)
	for i := 0; i < minLen; i++ {
		result[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return result
}

// Unzip splits a slice of pairs into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}
