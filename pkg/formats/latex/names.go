package latex

// formatTable is the fixed internal-name to display-name mapping applied
// when a write asks for LaTeX column names. It is presentation only and is
// never consulted for column identity. Do not mutate after init.
var formatTable = map[string]string{
	"H0":    `$H_0$`,
	"Om0":   `$\Omega_{m,0}$`,
	"Ode0":  `$\Omega_{\Lambda,0}$`,
	"Tcmb0": `$T_{CMB,0}$`,
	"Neff":  `$N_{eff}$`,
	"m_nu":  `$m_{nu}$`,
	"Ob0":   `$\Omega_{b,0}$`,
}

// DisplayName returns the LaTeX display name for an internal parameter name.
func DisplayName(name string) (string, bool) {
	display, ok := formatTable[name]
	return display, ok
}

// DisplayNames returns a copy of the full display-name mapping.
func DisplayNames() map[string]string {
	out := make(map[string]string, len(formatTable))
	for k, v := range formatTable {
		out[k] = v
	}
	return out
}
