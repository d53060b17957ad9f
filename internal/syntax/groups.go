package syntax

// PredefinedTypeKeywords are the keywords accepted by PredefinedType.
var PredefinedTypeKeywords = []Kind{
	BoolKeyword, ByteKeyword, CharKeyword, DecimalKeyword, DoubleKeyword,
	FloatKeyword, IntKeyword, LongKeyword, ObjectKeyword, ShortKeyword,
	StringKeyword, UIntKeyword, ULongKeyword, VoidKeyword,
}

// literalTokens maps literal expression kinds to their token kind.
var literalTokens = map[Kind]Kind{
	NumericLiteralExpression:   NumericLiteralToken,
	StringLiteralExpression:    StringLiteralToken,
	CharacterLiteralExpression: CharacterLiteralToken,
	TrueLiteralExpression:      TrueKeyword,
	FalseLiteralExpression:     FalseKeyword,
	NullLiteralExpression:      NullKeyword,
}

var unaryOperators = map[Kind]Kind{
	UnaryPlusExpression:  PlusToken,
	UnaryMinusExpression: MinusToken,
	LogicalNotExpression: ExclamationToken,
	BitwiseNotExpression: TildeToken,
}

var binaryOperators = map[Kind]Kind{
	AddExpression:                PlusToken,
	SubtractExpression:           MinusToken,
	MultiplyExpression:           AsteriskToken,
	DivideExpression:             SlashToken,
	ModuloExpression:             PercentToken,
	LogicalOrExpression:          BarBarToken,
	LogicalAndExpression:         AmpersandAmpersandToken,
	BitwiseOrExpression:          BarToken,
	BitwiseAndExpression:         AmpersandToken,
	ExclusiveOrExpression:        CaretToken,
	EqualsExpression:             EqualsEqualsToken,
	NotEqualsExpression:          ExclamationEqualsToken,
	LessThanExpression:           LessThanToken,
	LessThanOrEqualExpression:    LessThanEqualsToken,
	GreaterThanExpression:        GreaterThanToken,
	GreaterThanOrEqualExpression: GreaterThanEqualsToken,
	CoalesceExpression:           QuestionQuestionToken,
}

var assignmentOperators = map[Kind]Kind{
	SimpleAssignmentExpression:   EqualsToken,
	AddAssignmentExpression:      PlusEqualsToken,
	SubtractAssignmentExpression: MinusEqualsToken,
	MultiplyAssignmentExpression: AsteriskEqualsToken,
	DivideAssignmentExpression:   SlashEqualsToken,
}

var (
	binaryByToken     = invert(binaryOperators)
	unaryByToken      = invert(unaryOperators)
	assignmentByToken = invert(assignmentOperators)
)

func invert(m map[Kind]Kind) map[Kind]Kind {
	out := make(map[Kind]Kind, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// BinaryExpressionKind maps an operator token to its binary expression kind.
func BinaryExpressionKind(op Kind) (Kind, bool) {
	k, ok := binaryByToken[op]
	return k, ok
}

// UnaryExpressionKind maps a prefix operator token to its expression kind.
func UnaryExpressionKind(op Kind) (Kind, bool) {
	k, ok := unaryByToken[op]
	return k, ok
}

// AssignmentExpressionKind maps an assignment operator to its expression kind.
func AssignmentExpressionKind(op Kind) (Kind, bool) {
	k, ok := assignmentByToken[op]
	return k, ok
}

// LiteralExpressionKind maps a literal token kind to its expression kind.
func LiteralExpressionKind(tok Kind) (Kind, bool) {
	for k, v := range literalTokens {
		if v == tok {
			return k, true
		}
	}
	return None, false
}

// IsBinaryExpression reports whether k is a binary expression kind.
func (k Kind) IsBinaryExpression() bool { _, ok := binaryOperators[k]; return ok }

// IsAssignmentExpression reports whether k is an assignment kind.
func (k Kind) IsAssignmentExpression() bool { _, ok := assignmentOperators[k]; return ok }

// IsPredefinedTypeKeyword reports whether k may head a PredefinedType.
func (k Kind) IsPredefinedTypeKeyword() bool {
	for _, p := range PredefinedTypeKeywords {
		if p == k {
			return true
		}
	}
	return false
}

// IsModifier reports whether k is a declaration modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case PublicKeyword, PrivateKeyword, InternalKeyword, ProtectedKeyword,
		StaticKeyword, ReadOnlyKeyword, SealedKeyword, ConstKeyword,
		AbstractKeyword, VirtualKeyword, OverrideKeyword, NewKeyword:
		return true
	}
	return false
}

// IsInterpolatedStringStart reports whether k opens an interpolated string.
func (k Kind) IsInterpolatedStringStart() bool {
	return k == InterpolatedStringStartToken || k == InterpolatedVerbatimStringStartToken
}
