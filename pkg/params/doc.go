// Package params defines the PARSEC parameter record shared by the solver,
// the interchange parser, the catalog and the exporters. A ParameterSet is a
// plain value: copying it copies every field, so consumers that keep one
// (airfoil.Airfoil) are unaffected by later edits to the caller's copy.
// Angles are stored in radians; the interchange format and the catalog use
// degrees and convert on the way in.
package params
