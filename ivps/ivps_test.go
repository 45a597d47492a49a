package ivps

import (
	"math"
	"testing"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

func newRegistry(t *testing.T, engine string) *backend.Registry {
	t.Helper()
	r := backend.NewRegistry()
	if err := r.Select(engine); err != nil {
		t.Fatalf("select %s: %v", engine, err)
	}
	return r
}

func TestLotkaVolterraAtInitialState(t *testing.T) {
	for _, engine := range []string{"dense", "trace"} {
		t.Run(engine, func(t *testing.T) {
			r := newRegistry(t, engine)

			p, err := LotkaVolterra(r)
			if err != nil {
				t.Fatal(err)
			}

			got := p.Evaluate(0, p.InitialValues).Float64s()
			want := []float64{-10, 10}
			if len(got) != len(want) {
				t.Fatalf("expected %d components, got %d", len(want), len(got))
			}
			for i := range want {
				if math.Abs(got[i]-want[i]) > 1e-12 {
					t.Errorf("component %d: expected %f, got %f", i, want[i], got[i])
				}
			}
		})
	}
}

func TestLotkaVolterraOverrides(t *testing.T) {
	r := newRegistry(t, "dense")

	p, err := LotkaVolterra(r,
		ode.WithInitialValues(10, 5),
		ode.WithTimeSpan(0, 50),
		ode.WithParameters(1, 0, 1, 0),
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.InitialValues.Float64s(); got[0] != 10 || got[1] != 5 {
		t.Errorf("initial values not applied: %v", got)
	}
	if p.TimeSpan.T1 != 50 {
		t.Errorf("time span not applied: %v", p.TimeSpan)
	}

	// With the interaction terms zeroed the species decouple.
	got := p.Evaluate(0, p.InitialValues).Float64s()
	if got[0] != 10 || got[1] != -5 {
		t.Errorf("expected decoupled growth (10, -5), got %v", got)
	}
}

func TestFactoriesRequireSelectedEngine(t *testing.T) {
	r := backend.NewRegistry()

	if _, err := LotkaVolterra(r); err != backend.ErrNotSelected {
		t.Errorf("expected ErrNotSelected, got %v", err)
	}
	if _, err := VanDerPol(r); err != backend.ErrNotSelected {
		t.Errorf("expected ErrNotSelected, got %v", err)
	}
	if _, err := NeuralODEMLP(r); err != backend.ErrNotSelected {
		t.Errorf("expected ErrNotSelected, got %v", err)
	}
}

// The evaluation grid walks every first-order constructor, checks the
// declared dimension and confirms the field maps the initial state to a
// vector of the same length on both engines.
func TestFirstOrderFactoriesEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		factory ode.Factory
		dim     int
	}{
		{"lotka-volterra", LotkaVolterra, 2},
		{"logistic", Logistic, 1},
		{"affine-independent", AffineIndependent, 1},
		{"affine-dependent", AffineDependent, 2},
		{"lorenz63", Lorenz63, 3},
		{"lorenz96", Lorenz96, 10},
		{"roessler", Roessler, 3},
		{"rigid-body", RigidBody, 3},
		{"sir", SIR, 3},
		{"seir", SEIR, 4},
		{"sird", SIRD, 4},
		{"hires", HIRES, 8},
		{"rober", ROBER, 3},
		{"oregonator", Oregonator, 3},
		{"nonlinear-chemical-reaction", NonlinearChemicalReaction, 3},
		{"fitzhugh-nagumo", FitzHughNagumo, 2},
		{"goodwin", Goodwin, 2},
		{"van-der-pol", VanDerPolFirstOrder, 2},
		{"pleiades", PleiadesFirstOrder, 28},
		{"henon-heiles", HenonHeilesFirstOrder, 4},
		{"three-body-restricted", ThreeBodyRestrictedFirstOrder, 4},
		{"neural-ode-mlp", NeuralODEMLP, 1},
	}

	for _, engine := range []string{"dense", "trace"} {
		r := newRegistry(t, engine)
		for _, tc := range cases {
			t.Run(engine+"/"+tc.name, func(t *testing.T) {
				p, err := tc.factory(r)
				if err != nil {
					t.Fatal(err)
				}

				if p.Meta.Dimension != tc.dim {
					t.Errorf("expected dimension %d, got %d", tc.dim, p.Meta.Dimension)
				}
				if p.Meta.Order != 1 {
					t.Errorf("expected order 1, got %d", p.Meta.Order)
				}
				if p.InitialValues.Len() != tc.dim {
					t.Errorf("expected %d initial values, got %d", tc.dim, p.InitialValues.Len())
				}
				if p.TimeSpan.T1 <= p.TimeSpan.T0 {
					t.Errorf("degenerate time span %v", p.TimeSpan)
				}

				out := p.Evaluate(p.TimeSpan.T0, p.InitialValues)
				if out.Len() != tc.dim {
					t.Errorf("field output has length %d, state has %d", out.Len(), tc.dim)
				}
				for i, v := range out.Float64s() {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Errorf("component %d is not finite: %f", i, v)
					}
				}
			})
		}
	}
}

func TestSecondOrderFactoriesEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		factory ode.SecondOrderFactory
		dim     int
	}{
		{"van-der-pol", VanDerPol, 1},
		{"pleiades", Pleiades, 14},
		{"henon-heiles", HenonHeiles, 2},
		{"three-body-restricted", ThreeBodyRestricted, 2},
	}

	r := newRegistry(t, "dense")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.factory(r)
			if err != nil {
				t.Fatal(err)
			}

			if p.Meta.Order != 2 {
				t.Errorf("expected order 2, got %d", p.Meta.Order)
			}
			if p.Meta.Dimension != tc.dim {
				t.Errorf("expected dimension %d, got %d", tc.dim, p.Meta.Dimension)
			}
			if p.Position.Len() != tc.dim || p.Velocity.Len() != tc.dim {
				t.Errorf("initial condition pair has lengths %d and %d", p.Position.Len(), p.Velocity.Len())
			}

			out := p.Evaluate(p.Position, p.Velocity)
			if out.Len() != tc.dim {
				t.Errorf("acceleration has length %d, state has %d", out.Len(), tc.dim)
			}
		})
	}
}

func TestVanDerPolFirstOrderAtInitialState(t *testing.T) {
	r := newRegistry(t, "dense")

	p, err := VanDerPolFirstOrder(r)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.InitialValues.Float64s(); got[0] != 2 || got[1] != 0 {
		t.Fatalf("expected combined initial state (2, 0), got %v", got)
	}

	// du = 0, ddu = mu*((1 - u^2)*du - u) = -2 at the default start.
	got := p.Evaluate(0, p.InitialValues).Float64s()
	if got[0] != 0 || got[1] != -2 {
		t.Errorf("expected (0, -2), got %v", got)
	}
}

func TestVanDerPolScalarState(t *testing.T) {
	r := newRegistry(t, "dense")

	p, err := VanDerPol(r)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Position.IsScalar() || !p.Velocity.IsScalar() {
		t.Error("scalar problem should have scalar initial conditions")
	}
}

func TestLorenz96PerturbedEquilibrium(t *testing.T) {
	r := newRegistry(t, "dense")

	p, err := Lorenz96(r)
	if err != nil {
		t.Fatal(err)
	}

	u0 := p.InitialValues.Float64s()
	if u0[0] != lorenz96Forcing+lorenz96Perturb {
		t.Errorf("first coordinate should be perturbed, got %f", u0[0])
	}
	for i := 1; i < len(u0); i++ {
		if u0[i] != lorenz96Forcing {
			t.Errorf("coordinate %d should sit at the forcing value, got %f", i, u0[i])
		}
	}
}

func TestSIRConservesPopulation(t *testing.T) {
	r := newRegistry(t, "dense")

	p, err := SIR(r)
	if err != nil {
		t.Fatal(err)
	}

	// Compartment flows cancel, so the derivatives sum to zero.
	total := 0.0
	for _, v := range p.Evaluate(0, p.InitialValues).Float64s() {
		total += v
	}
	if math.Abs(total) > 1e-9 {
		t.Errorf("population not conserved, derivative sum %f", total)
	}
}

func TestNeuralODEMLPDeterministicWeights(t *testing.T) {
	r := newRegistry(t, "dense")

	p1, err := NeuralODEMLP(r)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NeuralODEMLP(r)
	if err != nil {
		t.Fatal(err)
	}

	if len(p1.Args) != 4 {
		t.Fatalf("expected 4 weight arrays for two layers, got %d", len(p1.Args))
	}
	if p1.Meta.Autonomous {
		t.Error("network input includes time, the field is not autonomous")
	}

	a := p1.Evaluate(0.5, p1.InitialValues).Float64s()
	b := p2.Evaluate(0.5, p2.InitialValues).Float64s()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("fixed seed should reproduce weights, got %v vs %v", a, b)
		}
	}
}

func TestNeuralODEMLPExplicitParameters(t *testing.T) {
	r := newRegistry(t, "dense")

	// Zero weights collapse the network output to the final bias.
	flat := make([]float64, 2*20+20+20*1+1)
	flat[len(flat)-1] = 3.5
	p, err := NeuralODEMLP(r, ode.WithParameters(flat...))
	if err != nil {
		t.Fatal(err)
	}

	got := p.Evaluate(0.25, p.InitialValues).Float64s()
	if len(got) != 1 || got[0] != 3.5 {
		t.Errorf("expected (3.5), got %v", got)
	}
}
