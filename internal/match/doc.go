// Package match provides identifier handling for property names.
//
// Key functions:
//   - NormalizeIdent: the comparison key for property names
//   - AccessorProperty: the property exposed by a getter-style method
//   - NewIdentifier: case conversions used when synthesizing method names
//   - Suggest: ranks known names against an unmatched one
package match
