package cosmology

import "strings"

// Built-in realizations with published parameter values. Each call returns a
// fresh record so callers cannot mutate shared state through metadata.

// Planck18 is the Planck 2018 flat Lambda-CDM baseline (TT,TE,EE+lowE+lensing).
func Planck18() *Cosmology {
	return mustFlat("Planck18", 67.66, 0.30966, FlatParams{
		Tcmb0: 2.7255,
		Neff:  3.046,
		MNu:   []float64{0, 0, 0.06},
		Ob0:   0.04897,
	})
}

// Planck15 is the Planck 2015 flat Lambda-CDM baseline.
func Planck15() *Cosmology {
	return mustFlat("Planck15", 67.74, 0.3075, FlatParams{
		Tcmb0: 2.7255,
		Neff:  3.046,
		MNu:   []float64{0, 0, 0.06},
		Ob0:   0.0486,
	})
}

// WMAP9 is the WMAP nine-year flat Lambda-CDM baseline.
func WMAP9() *Cosmology {
	return mustFlat("WMAP9", 69.32, 0.2865, FlatParams{
		Tcmb0: 2.725,
		Neff:  3.04,
		Ob0:   0.04628,
	})
}

// Realization looks up a built-in realization by name, case-insensitively.
func Realization(name string) (*Cosmology, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "planck18":
		return Planck18(), true
	case "planck15":
		return Planck15(), true
	case "wmap9":
		return WMAP9(), true
	default:
		return nil, false
	}
}

// Realizations lists the built-in realization names.
func Realizations() []string {
	return []string{"Planck18", "Planck15", "WMAP9"}
}

func mustFlat(name string, h0, om0 float64, extra FlatParams) *Cosmology {
	c, err := FlatLambdaCDM(name, h0, om0, extra)
	if err != nil {
		panic(err)
	}
	return c
}
