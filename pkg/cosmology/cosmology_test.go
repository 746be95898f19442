package cosmology_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-cosmio/pkg/cosmology"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := cosmology.New("", "x", nil); err == nil {
		t.Fatal("expected error for missing class")
	}

	_, err := cosmology.New("FlatLambdaCDM", "x", []cosmology.Parameter{
		{Name: "H0", Value: 70.0},
		{Name: "H0", Value: 71.0},
	})
	if err == nil || !strings.Contains(err.Error(), "declared twice") {
		t.Fatalf("expected duplicate parameter error, got %v", err)
	}
}

func TestFlatLambdaCDM_ParameterOrder(t *testing.T) {
	t.Parallel()

	c, err := cosmology.FlatLambdaCDM("test", 70, 0.3, cosmology.FlatParams{
		Tcmb0: 2.7255,
		Neff:  3.046,
		MNu:   []float64{0, 0, 0.06},
		Ob0:   0.045,
	})
	if err != nil {
		t.Fatalf("flat lambda cdm: %v", err)
	}

	want := []string{"H0", "Om0", "Tcmb0", "Neff", "m_nu", "Ob0"}
	params := c.Parameters()
	if len(params) != len(want) {
		t.Fatalf("parameter count: got %d want %d", len(params), len(want))
	}
	for i, name := range want {
		if params[i].Name != name {
			t.Fatalf("parameter %d: got %q want %q", i, params[i].Name, name)
		}
	}

	h0, ok := c.Parameter("H0")
	if !ok || h0.Unit != "km / (Mpc s)" {
		t.Fatalf("H0 lookup: %v %v", h0, ok)
	}
}

func TestRealization_Lookup(t *testing.T) {
	t.Parallel()

	for _, name := range cosmology.Realizations() {
		c, ok := cosmology.Realization(name)
		if !ok {
			t.Fatalf("realization %q not found", name)
		}
		if c.Name() != name {
			t.Fatalf("realization name: got %q want %q", c.Name(), name)
		}
		if c.Class() != "FlatLambdaCDM" {
			t.Fatalf("realization class: %q", c.Class())
		}
	}

	if c, ok := cosmology.Realization("planck18"); !ok || c.Name() != "Planck18" {
		t.Fatal("lookup should be case-insensitive")
	}
	if _, ok := cosmology.Realization("einstein-de-sitter"); ok {
		t.Fatal("unknown realization should not resolve")
	}
}

func TestPlanck18_Values(t *testing.T) {
	t.Parallel()

	c := cosmology.Planck18()
	h0, _ := c.Parameter("H0")
	if h0.Value.(float64) != 67.66 {
		t.Fatalf("H0: %v", h0.Value)
	}
	mnu, ok := c.Parameter("m_nu")
	if !ok {
		t.Fatal("m_nu missing")
	}
	arr := mnu.Value.([]float64)
	if len(arr) != 3 || arr[2] != 0.06 {
		t.Fatalf("m_nu: %v", arr)
	}
}
