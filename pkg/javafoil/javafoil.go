// Package javafoil reads and writes the "Parsec-11" parameter string used by
// JavaFoil, e.g. "Parsec-11 [0.0083:0.423:0.0587:-0.347:0.358:-0.032:0.417:0:0:10.03:5.64]".
// Values are colon separated in the order r_le, X_up, Z_up, Z_XX_up, X_lo,
// Z_lo, Z_XX_lo, Z_te, dZ_te, alpha_te, beta_te; the two angles are given in
// degrees. A locale comma is accepted as decimal separator.
package javafoil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-parsec/pkg/params"
)

// Tag is the identifier written in front of the bracketed values.
const Tag = "Parsec-11"

// Count is the number of values in a PARSEC-11 string.
const Count = 11

// ErrInvalidFormat reports a malformed interchange string.
var ErrInvalidFormat = errors.New("javafoil: invalid PARSEC-11 string")

// Parse converts an interchange string into a ParameterSet. The tag and the
// surrounding brackets are optional. The result is not validated; callers
// hand it to airfoil.New which reports domain errors.
func Parse(raw string) (params.ParameterSet, error) {
	body := strings.TrimSpace(raw)
	if len(body) >= len(Tag) && strings.EqualFold(body[:len(Tag)], Tag) {
		body = strings.TrimSpace(body[len(Tag):])
	}
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(body, "["), "]"))
	if body == "" {
		return params.ParameterSet{}, fmt.Errorf("%w: no values", ErrInvalidFormat)
	}
	if strings.ContainsAny(body, "[]") {
		return params.ParameterSet{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidFormat, raw)
	}

	fields := strings.Split(body, ":")
	if len(fields) != Count {
		return params.ParameterSet{}, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidFormat, Count, len(fields))
	}

	values := make([]float64, Count)
	for i, field := range fields {
		token := strings.ReplaceAll(strings.TrimSpace(field), ",", ".")
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return params.ParameterSet{}, fmt.Errorf("%w: value %d (%s) %q is not a number", ErrInvalidFormat, i, order[i], strings.TrimSpace(field))
		}
		values[i] = v
	}

	ps := params.New()
	ps.RLE = values[0]
	ps.XUp = values[1]
	ps.ZUp = values[2]
	ps.ZXXUp = values[3]
	ps.XLo = values[4]
	ps.ZLo = values[5]
	ps.ZXXLo = values[6]
	ps.ZTE = values[7]
	ps.DZTE = values[8]
	ps.AlphaTE = params.Radians(values[9])
	ps.BetaTE = params.Radians(values[10])
	return ps, nil
}

// MustParse panics on malformed input. Intended for literals.
func MustParse(raw string) params.ParameterSet {
	ps, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return ps
}

// Format writes the parameter set as a tagged interchange string using "."
// decimals. Lengths use the shortest representation that parses back to the
// same value; angles are rounded to 12 significant digits so the degree
// conversion does not leak noise like 19.999999999999996. The blending
// weight has no slot in the format and is dropped.
func Format(ps params.ParameterSet) string {
	values := []float64{
		ps.RLE, ps.XUp, ps.ZUp, ps.ZXXUp,
		ps.XLo, ps.ZLo, ps.ZXXLo,
		ps.ZTE, ps.DZTE,
	}
	parts := make([]string, 0, Count)
	for _, v := range values {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	for _, rad := range []float64{ps.AlphaTE, ps.BetaTE} {
		parts = append(parts, strconv.FormatFloat(params.Degrees(rad), 'g', 12, 64))
	}
	return Tag + " [" + strings.Join(parts, ":") + "]"
}

var order = [Count]string{
	params.FieldRLE, params.FieldXUp, params.FieldZUp, params.FieldZXXUp,
	params.FieldXLo, params.FieldZLo, params.FieldZXXLo,
	params.FieldZTE, params.FieldDZTE, params.FieldAlphaTE, params.FieldBetaTE,
}
