package either_test

import (
	"testing"

	"github.com/auth-platform/optics/either"
	"github.com/auth-platform/optics/opticstest"
	"pgregory.net/rapid"
)

// TestEitherExactlyOneSide verifies that a union value always inhabits
// exactly one alternative.
func TestEitherExactlyOneSide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := opticstest.EitherGen(rapid.Int(), rapid.String()).Draw(t, "e")

		if e.IsLeft() == e.IsRight() {
			t.Fatal("exactly one side must be inhabited")
		}
		if e.IsLeft() != e.LeftOption().IsSome() {
			t.Fatal("LeftOption must agree with IsLeft")
		}
		if e.IsRight() != e.RightOption().IsSome() {
			t.Fatal("RightOption must agree with IsRight")
		}
	})
}

// TestEitherMapLaws verifies that mapping one side leaves the other intact.
func TestEitherMapLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := opticstest.EitherGen(rapid.Int(), rapid.Int()).Draw(t, "e")
		addend := rapid.IntRange(1, 100).Draw(t, "addend")

		mappedLeft := either.MapLeft(e, func(x int) int { return x + addend })
		if e.IsRight() {
			if !mappedLeft.IsRight() || mappedLeft.RightValue() != e.RightValue() {
				t.Fatal("MapLeft must not touch a Right value")
			}
		} else if mappedLeft.LeftValue() != e.LeftValue()+addend {
			t.Fatalf("MapLeft result %d != %d", mappedLeft.LeftValue(), e.LeftValue()+addend)
		}

		mappedRight := either.MapRight(e, func(x int) int { return x * 2 })
		if e.IsLeft() {
			if !mappedRight.IsLeft() || mappedRight.LeftValue() != e.LeftValue() {
				t.Fatal("MapRight must not touch a Left value")
			}
		} else if mappedRight.RightValue() != e.RightValue()*2 {
			t.Fatalf("MapRight result %d != %d", mappedRight.RightValue(), e.RightValue()*2)
		}
	})
}

// TestEitherSwapInvolution verifies Swap().Swap() restores the original value.
func TestEitherSwapInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := opticstest.EitherGen(rapid.Int(), rapid.String()).Draw(t, "e")

		back := e.Swap().Swap()
		if back.IsLeft() != e.IsLeft() {
			t.Fatal("double swap changed the inhabited side")
		}
		if e.IsLeft() && back.LeftValue() != e.LeftValue() {
			t.Fatal("double swap changed the left value")
		}
		if e.IsRight() && back.RightValue() != e.RightValue() {
			t.Fatal("double swap changed the right value")
		}
	})
}

func TestEitherBasicOperations(t *testing.T) {
	t.Run("Left holds a left value", func(t *testing.T) {
		e := either.Left[string, int]("oops")
		if !e.IsLeft() || e.LeftValue() != "oops" {
			t.Error("expected Left(oops)")
		}
	})

	t.Run("Right holds a right value", func(t *testing.T) {
		e := either.Right[string](42)
		if !e.IsRight() || e.RightValue() != 42 {
			t.Error("expected Right(42)")
		}
	})

	t.Run("LeftOr and RightOr fall back across sides", func(t *testing.T) {
		e := either.Right[string](42)
		if e.LeftOr("fallback") != "fallback" {
			t.Error("expected fallback")
		}
		if e.RightOr(0) != 42 {
			t.Error("expected 42")
		}
	})

	t.Run("LeftValue on Right panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		either.Right[string](1).LeftValue()
	})

	t.Run("Fold selects the inhabited branch", func(t *testing.T) {
		got := either.Fold(either.Left[int, string](7),
			func(n int) string { return "left" },
			func(s string) string { return "right" },
		)
		if got != "left" {
			t.Errorf("expected left, got %q", got)
		}
	})

	t.Run("Match runs only the inhabited branch", func(t *testing.T) {
		var calls []string
		either.Right[string](1).Match(
			func(string) { calls = append(calls, "left") },
			func(int) { calls = append(calls, "right") },
		)
		if len(calls) != 1 || calls[0] != "right" {
			t.Errorf("expected [right], got %v", calls)
		}
	})
}
