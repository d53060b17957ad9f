package catalog

import "quoter/internal/syntax"

// Token and trivia factories of the builder API.
const (
	FactoryToken          = "Token"
	FactoryIdentifier     = "Identifier"
	FactoryLiteral        = "Literal"
	FactoryXmlTextLiteral = "XmlTextLiteral"
	FactoryXmlTextNewLine = "XmlTextNewLine"

	FactoryTrivia         = "Trivia"
	FactoryTriviaList     = "TriviaList"
	FactoryWhitespace     = "Whitespace"
	FactoryEndOfLine      = "EndOfLine"
	FactoryComment        = "Comment"
	FactoryDisabledText   = "DisabledText"
	FactoryPreprocessing  = "PreprocessingMessage"
	FactoryDocExterior    = "DocumentationCommentExterior"
	FactorySpace          = "Space"
	FactoryLineFeed       = "LineFeed"
	FactoryCarriageReturn = "CarriageReturnLineFeed"
)

// TokenFactory returns the builder function that creates tokens of kind k.
func TokenFactory(k syntax.Kind) string {
	switch k {
	case syntax.IdentifierToken:
		return FactoryIdentifier
	case syntax.NumericLiteralToken, syntax.StringLiteralToken, syntax.CharacterLiteralToken:
		return FactoryLiteral
	case syntax.XmlTextLiteralToken:
		return FactoryXmlTextLiteral
	case syntax.XmlTextLiteralNewLineToken:
		return FactoryXmlTextNewLine
	}
	return FactoryToken
}

// TriviaFactory returns the builder function for a plain trivia kind, or
// FactoryTrivia for structured kinds. ok is false for non-trivia kinds.
func TriviaFactory(k syntax.Kind) (name string, ok bool) {
	switch k {
	case syntax.WhitespaceTrivia:
		return FactoryWhitespace, true
	case syntax.EndOfLineTrivia:
		return FactoryEndOfLine, true
	case syntax.SingleLineCommentTrivia, syntax.MultiLineCommentTrivia:
		return FactoryComment, true
	case syntax.DisabledTextTrivia:
		return FactoryDisabledText, true
	case syntax.PreprocessingMessageTrivia:
		return FactoryPreprocessing, true
	case syntax.DocumentationCommentExteriorTrivia:
		return FactoryDocExterior, true
	}
	if k.IsStructuredTrivia() {
		return FactoryTrivia, true
	}
	return "", false
}

// CommentKind classifies comment text the way the Comment factory does.
func CommentKind(text string) syntax.Kind {
	if len(text) >= 2 && text[:2] == "/*" {
		return syntax.MultiLineCommentTrivia
	}
	return syntax.SingleLineCommentTrivia
}
