package lens_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/auth-platform/optics/lens"
)

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

func personNameLens() lens.SelfLens[Person, string] {
	return lens.AsSelf(lens.New(func(f func(string) string) func(Person) Person {
		return func(p Person) Person {
			p.Name = f(p.Name)
			return p
		}
	}))
}

func personAgeLens() lens.SelfLens[Person, int] {
	return lens.AsSelf(lens.New(func(f func(int) int) func(Person) Person {
		return func(p Person) Person {
			p.Age = f(p.Age)
			return p
		}
	}))
}

func personAddressLens() lens.SelfLens[Person, Address] {
	return lens.AsSelf(lens.New(func(f func(Address) Address) func(Person) Person {
		return func(p Person) Person {
			p.Address = f(p.Address)
			return p
		}
	}))
}

func addressCityLens() lens.SelfLens[Address, string] {
	return lens.AsSelf(lens.New(func(f func(string) string) func(Address) Address {
		return func(a Address) Address {
			a.City = f(a.City)
			return a
		}
	}))
}

func cityFirstRuneLens() lens.SelfLens[string, string] {
	return lens.AsSelf(lens.New(func(f func(string) string) func(string) string {
		return func(s string) string {
			if s == "" {
				return f(s)
			}
			return f(s[:1]) + s[1:]
		}
	}))
}

func TestLensGetSetIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Getter(Setter(source, value)) == value", prop.ForAll(
		func(name string, age int, newName string) bool {
			l := personNameLens()
			person := Person{Name: name, Age: age}
			updated := l.Setter()(person, newName)
			return l.Getter()(updated) == newName
		},
		gen.AnyString(),
		gen.Int(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestLensSetGetIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Setter(source, Getter(source)) == source", prop.ForAll(
		func(name string, age int) bool {
			l := personNameLens()
			person := Person{Name: name, Age: age}
			updated := l.Setter()(person, l.Getter()(person))
			return updated.Name == person.Name && updated.Age == person.Age
		},
		gen.AnyString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLensApplyMatchesGetSet(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Apply(f) == Setter(source, f(Getter(source)))", prop.ForAll(
		func(name string, age int, delta int) bool {
			l := personAgeLens()
			person := Person{Name: name, Age: age}
			f := func(a int) int { return a + delta }
			applied := l.Apply(f)(person)
			manual := l.Setter()(person, f(l.Getter()(person)))
			return applied == manual
		},
		gen.AnyString(),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestFocusAssociativity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Focus(Focus(a, b), c) == Focus(a, Focus(b, c))", prop.ForAll(
		func(city string, suffix string) bool {
			a := personAddressLens().Lens
			b := addressCityLens().Lens
			c := cityFirstRuneLens().Lens
			person := Person{Address: Address{City: city}}
			f := func(s string) string { return s + suffix }
			left := lens.Focus(lens.Focus(a, b), c).Apply(f)(person)
			right := lens.Focus(a, lens.Focus(b, c)).Apply(f)(person)
			return left == right
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestIdentityLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Identity composes as a neutral element", prop.ForAll(
		func(name string, suffix string) bool {
			l := personNameLens().Lens
			person := Person{Name: name}
			f := func(s string) string { return s + suffix }
			plain := l.Apply(f)(person)
			leftID := lens.Focus(lens.Identity[Person]().Lens, l).Apply(f)(person)
			rightID := lens.Focus(l, lens.Identity[string]().Lens).Apply(f)(person)
			return plain == leftID && plain == rightID
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestFocusComposition(t *testing.T) {
	t.Run("reaches the nested focus", func(t *testing.T) {
		personCity := lens.Focus(personAddressLens().Lens, addressCityLens().Lens)

		person := Person{
			Name:    "Alice",
			Address: Address{Street: "123 Main", City: "NYC"},
		}

		if got := lens.AsSelf(personCity).Getter()(person); got != "NYC" {
			t.Errorf("expected NYC, got %q", got)
		}

		updated := lens.AsSelf(personCity).Set("LA")(person)
		if updated.Address.City != "LA" {
			t.Error("expected LA")
		}
		if person.Address.City != "NYC" {
			t.Error("original should be unchanged")
		}
		if updated.Address.Street != "123 Main" {
			t.Error("street should be untouched")
		}
	})

	t.Run("Apply transforms through the chain", func(t *testing.T) {
		personCity := lens.Focus(personAddressLens().Lens, addressCityLens().Lens)

		person := Person{Address: Address{City: "nyc"}}
		updated := personCity.Apply(strings.ToUpper)(person)
		if updated.Address.City != "NYC" {
			t.Errorf("expected NYC, got %q", updated.Address.City)
		}
	})

	t.Run("Within is Focus with swapped arguments", func(t *testing.T) {
		person := Person{Address: Address{City: "nyc"}}
		focused := lens.Focus(personAddressLens().Lens, addressCityLens().Lens).Apply(strings.ToUpper)(person)
		within := lens.Within(addressCityLens().Lens, personAddressLens().Lens).Apply(strings.ToUpper)(person)
		if focused != within {
			t.Errorf("Focus gave %+v, Within gave %+v", focused, within)
		}
	})

	t.Run("pure lenses stay pure through Focus", func(t *testing.T) {
		personCity := lens.Focus(personAddressLens().Lens, addressCityLens().Lens)
		if personCity.IsMutating() {
			t.Error("composition of pure lenses should not be mutating")
		}
	})
}

func TestIdentityLens(t *testing.T) {
	l := lens.Identity[int]()
	if l.Getter()(42) != 42 {
		t.Error("expected 42")
	}
	if l.Set(100)(42) != 100 {
		t.Error("expected 100")
	}
	if l.Apply(func(n int) int { return n * 2 })(21) != 42 {
		t.Error("expected 42")
	}
}
