// Package canonical produces RFC 8785 canonical JSON for dimensions, units
// and harness traces, and derives content fingerprints from it.
//
// Key constraints:
//   - Object keys sorted by UTF-16 code units (not UTF-8 bytes)
//   - Strings NFC normalized, no HTML escaping
//   - No floats and no null; numbers are int64
//   - Tags render by display name, so two distinct tags with the same name
//     in one object are rejected as ambiguous
package canonical
