// Package orchestrator wires the parameter source → solver → sampler →
// renderer pipeline behind a single Generate call, with options for callers
// that bring their own catalog or renderers.
package orchestrator
