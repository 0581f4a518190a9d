// Package gen renders mixin artifacts and writes them to a Sink.
//
// Generation uses embedded text/template files. Parsed templates are kept in
// an LRU cache keyed by template name. Imports are computed from the type
// references collected by each component so that every name used in a body
// resolves in the artifact.
package gen
