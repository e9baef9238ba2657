// Package airfoil solves and evaluates PARSEC airfoil sections. Each surface
// is the polynomial z(x) = Σ a_i·x^(i+0.5), i = 0..5, whose six coefficients
// come from a dense 6x6 system encoding the trailing edge height and slope,
// the crest height, slope and curvature, and the leading edge radius.
// Construction through New solves both systems eagerly; a nil Airfoil is
// returned alongside DomainError or SingularSystemError failures.
package airfoil
