package params

import (
	"fmt"
	"strings"
)

var labels = map[string]string{
	FieldRLE:     "Leading edge radius",
	FieldXUp:     "Upper crest X",
	FieldZUp:     "Upper crest Z",
	FieldZXXUp:   "Upper crest curvature",
	FieldXLo:     "Lower crest X",
	FieldZLo:     "Lower crest Z",
	FieldZXXLo:   "Lower crest curvature",
	FieldZTE:     "Trailing edge Z",
	FieldDZTE:    "Trailing edge thickness",
	FieldAlphaTE: "Trailing edge direction (deg)",
	FieldBetaTE:  "Trailing edge wedge (deg)",
	FieldPMix:    "Blending weight",
}

// Label returns the human readable name of a field, or the field key itself
// when unknown.
func Label(field string) string {
	if label, ok := labels[field]; ok {
		return label
	}
	return field
}

// Describe renders the parameter set as aligned "label (key) = value" lines.
// Angles are shown in degrees.
func Describe(p ParameterSet) string {
	values := p.Values()

	width := 0
	for _, nv := range values {
		if n := len(Label(nv.Name)) + len(nv.Name) + 3; n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, nv := range values {
		value := nv.Value
		if nv.Name == FieldAlphaTE || nv.Name == FieldBetaTE {
			value = Degrees(value)
		}
		key := fmt.Sprintf("%s (%s)", Label(nv.Name), nv.Name)
		fmt.Fprintf(&b, "%-*s = %.10g\n", width, key, value)
	}
	return b.String()
}
