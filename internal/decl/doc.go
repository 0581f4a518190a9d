// Package decl wraps host symbols into declarations viewed through a type
// substitution.
//
// A TypeDeclaration reached through "class IntBox extends Box<Integer>" sees
// Box's members with T replaced by Integer. Wrappers are cheap values created
// per traversal; they hold a Ref into the symbol table rather than the symbol
// itself so they stay comparable and printable.
package decl
