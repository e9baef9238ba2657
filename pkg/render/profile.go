package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-parsec/pkg/airfoil"
)

// ErrEmptyProfile reports a profile renderers cannot draw.
var ErrEmptyProfile = errors.New("render: profile has fewer than two positions")

// CheckProfile rejects profiles with too few positions, positions that are
// not strictly ascending, or surfaces whose length does not match X.
func CheckProfile(profile airfoil.Profile) error {
	n := len(profile.X)
	if n < 2 {
		return fmt.Errorf("%w (got %d)", ErrEmptyProfile, n)
	}
	if len(profile.Upper) != n || len(profile.Lower) != n {
		return fmt.Errorf("render: surface length mismatch: x=%d upper=%d lower=%d", n, len(profile.Upper), len(profile.Lower))
	}
	if err := airfoil.CheckAscending(profile.X); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
