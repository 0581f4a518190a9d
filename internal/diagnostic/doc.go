// Package diagnostic provides structured errors, warnings and infos reported
// by a generation round.
//
// Key capabilities:
//   - Failures isolated to one target, with the recovered stack
//   - Round-level failures such as unknown generator bindings
//   - Constructor parameters without a matching property, with suggestions
package diagnostic
