// Package pkgmerge merges request payloads.
//
// Payloads are plain map[string]any values. Merging is recursive for nested
// maps; any other value in the overlay (scalars, slices, nil) replaces the base.
// Inputs are never mutated.
package pkgmerge
