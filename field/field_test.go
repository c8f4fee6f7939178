package field

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFieldSetGetRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Get returns the last Set value", prop.ForAll(
		func(initial, next int) bool {
			f := New(initial)
			f.Set(next)
			return f.Get() == next
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("Transform writes and returns fn(Get())", prop.ForAll(
		func(initial, addend int) bool {
			f := New(initial)
			result := Transform[int](f, func(v int) int { return v + addend })
			return result == initial+addend && f.Get() == initial+addend
		},
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestFieldBasicOperations(t *testing.T) {
	t.Run("New holds the initial value", func(t *testing.T) {
		f := New("alpha")
		if f.Get() != "alpha" {
			t.Errorf("expected alpha, got %q", f.Get())
		}
	})

	t.Run("Empty holds the zero value", func(t *testing.T) {
		f := Empty[int]()
		if f.Get() != 0 {
			t.Errorf("expected 0, got %d", f.Get())
		}
	})

	t.Run("Set replaces the value", func(t *testing.T) {
		f := New(1)
		f.Set(2)
		if f.Get() != 2 {
			t.Errorf("expected 2, got %d", f.Get())
		}
	})
}

func TestRefOf(t *testing.T) {
	t.Run("adapts accessor functions", func(t *testing.T) {
		backing := 10
		ref := RefOf(
			func() int { return backing },
			func(v int) { backing = v },
		)
		if ref.Get() != 10 {
			t.Errorf("expected 10, got %d", ref.Get())
		}
		ref.Set(42)
		if backing != 42 {
			t.Errorf("expected backing 42, got %d", backing)
		}
	})

	t.Run("Transform goes through custom accessors", func(t *testing.T) {
		var writes []int
		backing := 3
		ref := RefOf(
			func() int { return backing },
			func(v int) { writes = append(writes, v); backing = v },
		)
		Transform(ref, func(v int) int { return v * v })
		if backing != 9 {
			t.Errorf("expected 9, got %d", backing)
		}
		if len(writes) != 1 || writes[0] != 9 {
			t.Errorf("expected a single write of 9, got %v", writes)
		}
	})
}
