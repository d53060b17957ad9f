// Package eval reads the builder text produced by internal/quote and runs it
// against the builder API, giving back the tree it describes.
//
// # Назначение
//
//   - scan.go: tokens of the builder language (identifiers, `@name`, string,
//     verbatim string, char and numeric literals, punctuation).
//   - parse.go: calls with an optional generic argument, named arguments,
//     `.WithX(...)` follow-ups, `SyntaxKind.K`, `default`, `true`, `false`.
//   - eval.go, builtins.go: node factories from the catalog, token, trivia
//     and list builders.
//
// # Не делает
//
// No type inference beyond what the builder text needs: node slots accept
// any node, token slots any token. The package exists to close the loop for
// round-trip checks, not to reproduce the full builder API.
package eval
