// Package diag defines the diagnostic model shared by the lexer, parser,
// builder evaluator and batch driver.
//
// # Назначение
//
//   - Deterministic data structures for findings (Diagnostic, Note).
//   - Light-weight producers/consumers: Reporter, BagReporter, DedupReporter, Bag.
//   - Stable numeric codes with string IDs: LEX1xxx, SYN2xxx, QUO4xxx,
//     EVL5xxx, IO6xxx.
//
// # Не делает
//
// No formatting beyond the one-line short form (see internal/diagfmt for
// pretty output), no IO.
//
// Engine failures of the serializer are typed errors in internal/quote; they
// reuse the QUO codes declared here so the CLI can print one vocabulary.
package diag
