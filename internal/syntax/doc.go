// Package syntax is the lossless tree model: one Kind enumeration over
// nodes, tokens and trivia, plus Node/Token/Trivia and the per-kind slot
// schema.
//
// Invariants:
//   - Concatenating every token's leading trivia, text and trailing trivia in
//     order (Node.FullString) reproduces the parsed source byte for byte.
//   - Slot layout is fixed per kind (Schema); absent optional nodes and tokens
//     are nil, empty lists are nil or zero-length.
//   - Trivia.Structure is non-nil exactly for directive and documentation
//     comment kinds.
//   - Kind.String is the builder name used in generated code.
//
// The tree is treated as read-only by everything downstream of the parser;
// the canonical formatter works on a Clone.
package syntax
