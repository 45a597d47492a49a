package catalog

import (
	"sort"
	"strings"
	"testing"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	r := backend.NewRegistry()
	if err := r.Select("dense"); err != nil {
		t.Fatal(err)
	}

	factory, err := reg.Get("lotka-volterra")
	if err != nil {
		t.Fatal(err)
	}

	p, err := factory(r)
	if err != nil {
		t.Fatal(err)
	}
	if p.Meta.Dimension != 2 {
		t.Errorf("expected dimension 2, got %d", p.Meta.Dimension)
	}
}

func TestRegistryUnknownProblem(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("brusselator")
	if err == nil {
		t.Fatal("expected an error for an unregistered name")
	}
	if !strings.Contains(err.Error(), "unknown problem: brusselator") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	names := reg.List()

	if !sort.StringsAreSorted(names) {
		t.Error("names should be sorted")
	}
	for _, want := range []string{"lorenz63", "van-der-pol", "neural-ode-mlp", "hires"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s missing from the listing", want)
		}
	}
}

func TestRegistryEveryEntryConstructs(t *testing.T) {
	reg := NewRegistry()
	r := backend.NewRegistry()
	if err := r.Select("dense"); err != nil {
		t.Fatal(err)
	}

	for _, name := range reg.List() {
		factory, err := reg.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		p, err := factory(r)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if p.InitialValues == nil {
			t.Errorf("%s: missing initial values", name)
		}
		if p.VectorField == nil && p.TimeField == nil {
			t.Errorf("%s: missing vector field", name)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", func(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
		return ode.Problem{}, nil
	})

	if _, err := reg.Get("custom"); err != nil {
		t.Fatal(err)
	}
}
