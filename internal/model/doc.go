// Package model provides the structural type representation shared by every
// stage of mixin generation.
//
// Key types:
//   - TypeID: package + simple name of a declared type
//   - Type: closed sum of Declared, Primitive, Array, Variable, Wildcard and
//     ErrorPlaceholder
//   - TypeParameter / TypeParameters: generic parameters with their bounds
//   - Substitutions: immutable parameter -> type bindings applied across
//     generic inheritance edges
//
// Types are plain values. They never hold host handles, so two types built
// from different substitutions compare equal when their structure does.
package model
