// Package analyze provides the host symbol table consumed by the generator.
//
// A declaration file (YAML) describes packages, their classes and interfaces,
// members, generic parameters and markers. The loader parses it, resolves
// every type expression against its scope and produces a read-only
// SymbolTable keyed by model.TypeID. Everything downstream refers to
// declarations by id into this table instead of holding host handles.
//
// Key types:
//   - SymbolTable: all declared types, packages and marker bindings
//   - TypeSymbol: a class or interface with fields, methods and constructors
//   - TypeExpr: parsed but unresolved type expression text
package analyze
