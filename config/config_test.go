package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/catalog"
	"github.com/san-kum/odezoo/ode"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	data := `
engine: trace
seed: 42
problems:
  lotka-volterra:
    initial_values: [10, 5]
    time_span: [0, 50]
    parameters: [1, 0.1, 1, 0.1]
  lorenz63: {}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Engine != "trace" {
		t.Errorf("expected engine trace, got %s", cfg.Engine)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if len(cfg.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %d", len(cfg.Problems))
	}

	lv := cfg.Problems["lotka-volterra"]
	if len(lv.InitialValues) != 2 || lv.InitialValues[0] != 10 {
		t.Errorf("initial values not parsed: %v", lv.InitialValues)
	}
	if len(lv.TimeSpan) != 2 || lv.TimeSpan[1] != 50 {
		t.Errorf("time span not parsed: %v", lv.TimeSpan)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")

	cfg := DefaultConfig()
	cfg.Engine = "trace"
	cfg.Problems["rober"] = ProblemConfig{Parameters: []float64{0.04, 3e7, 1e4}}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Engine != "trace" {
		t.Errorf("expected engine trace, got %s", loaded.Engine)
	}
	if got := loaded.Problems["rober"].Parameters; len(got) != 3 || got[1] != 3e7 {
		t.Errorf("parameters not round-tripped: %v", got)
	}
}

func TestApplySelectsEngine(t *testing.T) {
	cfg := DefaultConfig()
	r := backend.NewRegistry()

	if err := cfg.Apply(r); err != nil {
		t.Fatal(err)
	}
	engine, ok := r.Current()
	if !ok || engine != backend.EngineDense {
		t.Errorf("expected the dense default, got %v", engine)
	}

	// A second Apply on the same registry hits the single-select rule.
	if err := cfg.Apply(r); err != backend.ErrAlreadySelected {
		t.Errorf("expected ErrAlreadySelected, got %v", err)
	}
}

func TestApplyUnknownEngine(t *testing.T) {
	cfg := &Config{Engine: "sparse"}
	r := backend.NewRegistry()

	if err := cfg.Apply(r); err == nil {
		t.Fatal("expected an error for an unknown engine")
	}
	if r.Selected() {
		t.Error("registry should stay unselected after a failed Apply")
	}
}

func TestOptionsBridge(t *testing.T) {
	r := backend.NewRegistry()
	if err := r.Select("dense"); err != nil {
		t.Fatal(err)
	}

	pc := ProblemConfig{
		InitialValues: []float64{10, 5},
		TimeSpan:      []float64{0, 50},
	}

	reg := catalog.NewRegistry()
	factory, err := reg.Get("lotka-volterra")
	if err != nil {
		t.Fatal(err)
	}

	p, err := factory(r, pc.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.InitialValues.Float64s(); got[0] != 10 || got[1] != 5 {
		t.Errorf("initial values not applied: %v", got)
	}
	if p.TimeSpan != (ode.TimeSpan{T0: 0, T1: 50}) {
		t.Errorf("time span not applied: %v", p.TimeSpan)
	}
}

func TestOptionsEmpty(t *testing.T) {
	if opts := (ProblemConfig{}).Options(); len(opts) != 0 {
		t.Errorf("empty overrides should produce no options, got %d", len(opts))
	}
}
