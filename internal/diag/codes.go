package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadEscape                Code = 1006
	LexNewlineInString          Code = 1007
	LexBadDirective             Code = 1008
	LexUnbalancedDirective      Code = 1009
	LexMissingEndIf             Code = 1010

	// Парсерные
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectSemicolon     Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectType          Code = 2004
	SynExpectExpression    Code = 2005
	SynUnclosedParen       Code = 2006
	SynUnclosedBrace       Code = 2007
	SynUnclosedBracket     Code = 2008
	SynUnexpectedTopLevel  Code = 2009
	SynExpectMember        Code = 2010
	SynExpectStatement     Code = 2011
	SynExpectAccessor      Code = 2012
	SynBadInterpolation    Code = 2013
	SynBadDirectiveSyntax  Code = 2014
	SynTrailingTokens      Code = 2015
	SynModifierNotAllowed  Code = 2016
	SynTooDeep             Code = 2017

	// Сериализация
	QuoInfo                 Code = 4000
	QuoUnsupportedConstruct Code = 4001
	QuoMalformedLiteral     Code = 4002
	QuoDepthExceeded        Code = 4003
	QuoIndentationImbalance Code = 4004

	// Вычисление построителя
	EvlInfo            Code = 5000
	EvlSyntax          Code = 5001
	EvlUnknownFactory  Code = 5002
	EvlUnknownKind     Code = 5003
	EvlArgumentCount   Code = 5004
	EvlArgumentType    Code = 5005
	EvlUnknownWith     Code = 5006
	EvlRequiredMissing Code = 5007
	EvlTooDeep         Code = 5008

	// Ввод/вывод
	IOInfo           Code = 6000
	IOLoadFileError  Code = 6001
	IOCacheError     Code = 6002
	IOConfigError    Code = 6003
	IORoundTripError Code = 6004
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Invalid numeric literal",
		LexUnterminatedChar:         "Unterminated character literal",
		LexBadEscape:                "Invalid escape sequence",
		LexNewlineInString:          "Newline in string literal",
		LexBadDirective:             "Invalid preprocessor directive",
		LexUnbalancedDirective:      "Unexpected conditional directive",
		LexMissingEndIf:             "Missing #endif",

		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectSemicolon:    "Expected semicolon",
		SynExpectIdentifier:   "Expected identifier",
		SynExpectType:         "Expected type",
		SynExpectExpression:   "Expected expression",
		SynUnclosedParen:      "Unclosed parenthesis",
		SynUnclosedBrace:      "Unclosed brace",
		SynUnclosedBracket:    "Unclosed bracket",
		SynUnexpectedTopLevel: "Unexpected top-level construct",
		SynExpectMember:       "Expected member declaration",
		SynExpectStatement:    "Expected statement",
		SynExpectAccessor:     "Expected get or set accessor",
		SynBadInterpolation:   "Invalid interpolation",
		SynBadDirectiveSyntax: "Invalid directive expression",
		SynTrailingTokens:     "Unexpected tokens after directive",
		SynModifierNotAllowed: "Modifier not allowed here",
		SynTooDeep:            "Nesting too deep",

		QuoInfo:                 "Quote information",
		QuoUnsupportedConstruct: "Unsupported construct",
		QuoMalformedLiteral:     "Malformed literal",
		QuoDepthExceeded:        "Nesting depth exceeded",
		QuoIndentationImbalance: "Indentation imbalance",

		EvlInfo:            "Evaluator information",
		EvlSyntax:          "Invalid builder expression",
		EvlUnknownFactory:  "Unknown factory",
		EvlUnknownKind:     "Unknown syntax kind",
		EvlArgumentCount:   "Wrong number of arguments",
		EvlArgumentType:    "Wrong argument type",
		EvlUnknownWith:     "Unknown With method",
		EvlRequiredMissing: "Required slot missing",
		EvlTooDeep:         "Builder expression nested too deeply",

		IOInfo:           "IO information",
		IOLoadFileError:  "Failed to load file",
		IOCacheError:     "Cache failure",
		IOConfigError:    "Invalid configuration",
		IORoundTripError: "Round trip mismatch",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("QUO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
