// Package tag provides the opaque identities that dimensions and units are
// keyed by.
//
// A Tag is equal to another Tag only when both came from the same call to
// Declare. The name carried by a tag is for diagnostics and canonical
// rendering; it never participates in equality, so two packages can declare
// a "foot" unit without the two ever being confused.
//
// This package imports nothing internal. Every other algebra package builds
// on it.
package tag
