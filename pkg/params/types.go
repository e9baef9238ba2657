package params

import "math"

// DefaultMix is the blending weight assigned by New.
const DefaultMix = 1.0

// ParameterSet holds the eleven PARSEC shape parameters plus the blending
// weight carried by the original parametrisation: leading edge radius, the
// position, height and curvature of each crest, the trailing edge mean height
// and thickness, and the trailing edge direction and wedge angles (radians).
// PMix is stored only; the solver does not read it.
type ParameterSet struct {
	RLE     float64 `json:"r_le" yaml:"r_le"`
	XUp     float64 `json:"x_up" yaml:"x_up"`
	ZUp     float64 `json:"z_up" yaml:"z_up"`
	ZXXUp   float64 `json:"zxx_up" yaml:"zxx_up"`
	XLo     float64 `json:"x_lo" yaml:"x_lo"`
	ZLo     float64 `json:"z_lo" yaml:"z_lo"`
	ZXXLo   float64 `json:"zxx_lo" yaml:"zxx_lo"`
	ZTE     float64 `json:"z_te" yaml:"z_te"`
	DZTE    float64 `json:"dz_te" yaml:"dz_te"`
	AlphaTE float64 `json:"alpha_te" yaml:"alpha_te"`
	BetaTE  float64 `json:"beta_te" yaml:"beta_te"`
	PMix    float64 `json:"p_mix" yaml:"p_mix"`
}

// New returns a zero parameter record with the default blending weight.
func New() ParameterSet {
	return ParameterSet{PMix: DefaultMix}
}

// Field names used in error reports and descriptions.
const (
	FieldRLE     = "r_le"
	FieldXUp     = "x_up"
	FieldZUp     = "z_up"
	FieldZXXUp   = "zxx_up"
	FieldXLo     = "x_lo"
	FieldZLo     = "z_lo"
	FieldZXXLo   = "zxx_lo"
	FieldZTE     = "z_te"
	FieldDZTE    = "dz_te"
	FieldAlphaTE = "alpha_te"
	FieldBetaTE  = "beta_te"
	FieldPMix    = "p_mix"
)

// NamedValue pairs a field name with its value.
type NamedValue struct {
	Name  string
	Value float64
}

// Values lists the eleven shape parameters in interchange order followed by
// the blending weight.
func (p ParameterSet) Values() []NamedValue {
	return []NamedValue{
		{FieldRLE, p.RLE},
		{FieldXUp, p.XUp},
		{FieldZUp, p.ZUp},
		{FieldZXXUp, p.ZXXUp},
		{FieldXLo, p.XLo},
		{FieldZLo, p.ZLo},
		{FieldZXXLo, p.ZXXLo},
		{FieldZTE, p.ZTE},
		{FieldDZTE, p.DZTE},
		{FieldAlphaTE, p.AlphaTE},
		{FieldBetaTE, p.BetaTE},
		{FieldPMix, p.PMix},
	}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
