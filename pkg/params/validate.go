package params

import "math"

// Validate checks the per-field domain required by the coefficient solver:
// every value finite, a non-negative leading edge radius and both crest
// positions inside (0, 1]. Combinations of fields are not checked; crossed
// or otherwise unphysical shapes are valid parameter sets.
func (p ParameterSet) Validate() error {
	for _, nv := range p.Values() {
		if math.IsNaN(nv.Value) || math.IsInf(nv.Value, 0) {
			return domainErr(nv.Name, nv.Value, "value must be finite")
		}
	}
	if p.RLE < 0 {
		return domainErr(FieldRLE, p.RLE, "leading edge radius must not be negative")
	}
	if err := CheckCrest(FieldXUp, p.XUp); err != nil {
		return err
	}
	return CheckCrest(FieldXLo, p.XLo)
}

// CheckCrest validates a single crest position against (0, 1].
func CheckCrest(field string, x float64) error {
	if math.IsNaN(x) || x <= 0 || x > 1 {
		return domainErr(field, x, "crest position must lie in (0, 1]")
	}
	return nil
}
