// Package quote turns a syntax tree into the text of nested builder calls
// that recreate it: `CompilationUnit().WithMembers(...)` and so on.
//
// # Назначение
//
//   - Serialize / SerializeNode: the tree walk, one catalog entry per node.
//   - Token and literal encoding (Token, Identifier, Literal, XmlTextLiteral).
//   - Trivia lists, including documentation comments and directives that
//     re-enter the node walk through Trivia(...).
//   - Layout of the generated text (writer.go).
//
// # Не делает
//
// No evaluation of the generated text (see internal/eval), no file IO, no
// caching. A call is synchronous and owns all of its state; the catalog is
// the only shared data and it is read-only.
//
// Left-leaning chains (member access, invocation, binary operators, ...) are
// walked with an explicit stack; Settings.MaxDepth bounds the remaining
// native recursion.
package quote
