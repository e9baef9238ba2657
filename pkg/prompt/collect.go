package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-parsec/pkg/catalog"
	"github.com/goliatone/go-parsec/pkg/params"
)

// field binds a parameter to the value edited in the prompt. Angles are
// edited in degrees.
type field struct {
	name    string
	value   *float64
	degrees bool
	check   func(float64) error
}

func fields(p *params.ParameterSet) []field {
	return []field{
		{name: params.FieldRLE, value: &p.RLE, check: nonNegative},
		{name: params.FieldXUp, value: &p.XUp, check: crest(params.FieldXUp)},
		{name: params.FieldZUp, value: &p.ZUp},
		{name: params.FieldZXXUp, value: &p.ZXXUp},
		{name: params.FieldXLo, value: &p.XLo, check: crest(params.FieldXLo)},
		{name: params.FieldZLo, value: &p.ZLo},
		{name: params.FieldZXXLo, value: &p.ZXXLo},
		{name: params.FieldZTE, value: &p.ZTE},
		{name: params.FieldDZTE, value: &p.DZTE},
		{name: params.FieldAlphaTE, value: &p.AlphaTE, degrees: true},
		{name: params.FieldBetaTE, value: &p.BetaTE, degrees: true},
	}
}

// CollectParameters asks for each of the eleven shape parameters, offering
// the values of defaults, then shows the result and asks for confirmation.
// Declining starts another round seeded with the answers just given. The
// blending weight is carried over from defaults unchanged.
func CollectParameters(ctx context.Context, driver Driver, defaults params.ParameterSet) (params.ParameterSet, error) {
	if driver == nil {
		return params.ParameterSet{}, errors.New("prompt: driver is required")
	}

	current := defaults
	for {
		next := current
		for _, f := range fields(&next) {
			value, err := askValue(ctx, driver, f)
			if err != nil {
				return params.ParameterSet{}, err
			}
			*f.value = value
		}

		if err := next.Validate(); err != nil {
			return params.ParameterSet{}, fmt.Errorf("prompt: %w", err)
		}
		if err := driver.Info(ctx, params.Describe(next)); err != nil {
			return params.ParameterSet{}, err
		}

		ok, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Use these parameters?",
			Default: true,
		})
		if err != nil {
			return params.ParameterSet{}, err
		}
		if ok {
			return next, nil
		}
		current = next
	}
}

// ChooseEntry lets the user pick a named parameter set from store.
func ChooseEntry(ctx context.Context, driver Driver, store *catalog.Store, preferred string) (catalog.Entry, error) {
	if driver == nil {
		return catalog.Entry{}, errors.New("prompt: driver is required")
	}
	names := store.Names()
	if len(names) == 0 {
		return catalog.Entry{}, ErrEmptyCatalog
	}

	options := make([]string, len(names))
	defaultIndex := 0
	for i, name := range names {
		entry, _ := store.Get(name)
		options[i] = name
		if entry.Description != "" {
			options[i] = name + " - " + entry.Description
		}
		if name == preferred {
			defaultIndex = i
		}
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Start from which airfoil?",
		Options:      options,
		DefaultIndex: defaultIndex,
		PageSize:     10,
	})
	if err != nil {
		return catalog.Entry{}, err
	}
	if idx < 0 || idx >= len(names) {
		return catalog.Entry{}, fmt.Errorf("prompt: selection %d out of range", idx)
	}
	entry, _ := store.Get(names[idx])
	return entry, nil
}

func askValue(ctx context.Context, driver Driver, f field) (float64, error) {
	current := *f.value
	if f.degrees {
		current = params.Degrees(current)
	}

	validate := func(answer string) error {
		v, err := parseNumber(answer)
		if err != nil {
			return err
		}
		if f.check != nil {
			return f.check(v)
		}
		return nil
	}

	answer, err := driver.Input(ctx, InputConfig{
		Message:   params.Label(f.name),
		Default:   strconv.FormatFloat(current, 'g', 10, 64),
		Help:      "Decimal number; a comma is accepted as decimal separator.",
		Validator: validate,
	})
	if err != nil {
		return 0, err
	}
	if err := validate(answer); err != nil {
		return 0, fmt.Errorf("prompt: %s: %w", f.name, err)
	}

	v, _ := parseNumber(answer)
	if f.degrees {
		v = params.Radians(v)
	}
	return v, nil
}

func parseNumber(answer string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(answer), ",", ".")
	if text == "" {
		return 0, errors.New("a value is required")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", answer)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", answer)
	}
	return v, nil
}

func nonNegative(v float64) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func crest(name string) func(float64) error {
	return func(v float64) error {
		return params.CheckCrest(name, v)
	}
}
