// Package compose runs generation rounds.
//
// A round discovers the components every bound generator contributes, groups
// them by target and, for each target with exactly one contract interface,
// renders and emits a single mixin artifact. Per-target work runs through a
// Strategy; a failure in one target never affects the others.
package compose
