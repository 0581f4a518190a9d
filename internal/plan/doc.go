// Package plan resolves the properties of a declaration: the named, typed and
// accessible attributes derived from fields and getter-shaped methods.
//
// Resolution pipeline:
//  1. Enumerate non-private candidates across the inheritance graph
//  2. Group by normalized name; drop any group holding an excluded candidate
//  3. If anything is explicitly included, keep only included candidates
//  4. Keep the first candidate per name in traversal order
//  5. Order by constructor or factory parameters when one is given, filling
//     unmatched parameters with a sentinel property
package plan
