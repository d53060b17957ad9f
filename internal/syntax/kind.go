package syntax

// Kind is the single closed enumeration over node, token and trivia kinds.
// Its String form is the builder-facing name used after `SyntaxKind.` in
// generated code, so renaming a constant changes the output format.
type Kind uint16

const (
	// None is the zero kind; it never appears in a well-formed tree.
	None Kind = iota

	// ===== punctuation =====
	TildeToken              // ~
	ExclamationToken        // !
	PercentToken            // %
	CaretToken              // ^
	AmpersandToken          // &
	AsteriskToken           // *
	OpenParenToken          // (
	CloseParenToken         // )
	MinusToken              // -
	PlusToken               // +
	EqualsToken             // =
	OpenBraceToken          // {
	CloseBraceToken         // }
	OpenBracketToken        // [
	CloseBracketToken       // ]
	BarToken                // |
	ColonToken              // :
	SemicolonToken          // ;
	DoubleQuoteToken        // "
	SingleQuoteToken        // '
	LessThanToken           // <
	CommaToken              // ,
	GreaterThanToken        // >
	DotToken                // .
	QuestionToken           // ?
	HashToken               // #
	SlashToken              // /
	SlashGreaterThanToken   // />
	LessThanSlashToken      // </
	BarBarToken             // ||
	AmpersandAmpersandToken // &&
	ExclamationEqualsToken  // !=
	EqualsEqualsToken       // ==
	EqualsGreaterThanToken  // =>
	LessThanEqualsToken     // <=
	GreaterThanEqualsToken  // >=
	QuestionQuestionToken   // ??
	PlusEqualsToken         // +=
	MinusEqualsToken        // -=
	AsteriskEqualsToken     // *=
	SlashEqualsToken        // /=

	// ===== keywords =====
	BoolKeyword
	ByteKeyword
	CharKeyword
	DecimalKeyword
	DoubleKeyword
	FloatKeyword
	IntKeyword
	LongKeyword
	ObjectKeyword
	ShortKeyword
	StringKeyword
	UIntKeyword
	ULongKeyword
	VoidKeyword
	NullKeyword
	TrueKeyword
	FalseKeyword
	IfKeyword
	ElseKeyword
	WhileKeyword
	ReturnKeyword
	NewKeyword
	ThisKeyword
	PublicKeyword
	PrivateKeyword
	InternalKeyword
	ProtectedKeyword
	StaticKeyword
	ReadOnlyKeyword
	SealedKeyword
	ConstKeyword
	AbstractKeyword
	VirtualKeyword
	OverrideKeyword
	RefKeyword
	OutKeyword
	InKeyword
	ParamsKeyword
	ClassKeyword
	StructKeyword
	InterfaceKeyword
	EnumKeyword
	NamespaceKeyword
	UsingKeyword
	DefaultKeyword

	// contextual keywords: lexed as identifiers, retagged by the parser
	GetKeyword
	SetKeyword

	// preprocessor keywords: only produced inside directives
	ElifKeyword
	EndIfKeyword
	RegionKeyword
	EndRegionKeyword
	DefineKeyword
	UndefKeyword
	LineKeyword
	PragmaKeyword
	WarningKeyword
	ErrorKeyword
	DisableKeyword
	RestoreKeyword
	HiddenKeyword
	NullableKeyword
	EnableKeyword
	WarningsKeyword
	AnnotationsKeyword

	// ===== tokens with variable text =====
	IdentifierToken
	NumericLiteralToken
	CharacterLiteralToken
	StringLiteralToken
	InterpolatedStringStartToken
	InterpolatedVerbatimStringStartToken
	InterpolatedStringEndToken
	InterpolatedStringTextToken
	XmlTextLiteralToken
	XmlTextLiteralNewLineToken
	EndOfDirectiveToken
	EndOfDocumentationCommentToken
	EndOfFileToken
	OmittedArraySizeExpressionToken
	BadToken

	// ===== trivia =====
	EndOfLineTrivia
	WhitespaceTrivia
	SingleLineCommentTrivia
	MultiLineCommentTrivia
	DocumentationCommentExteriorTrivia
	DisabledTextTrivia
	PreprocessingMessageTrivia

	// ===== structured trivia (trivia kind and node kind at once) =====
	SingleLineDocumentationCommentTrivia
	IfDirectiveTrivia
	ElifDirectiveTrivia
	ElseDirectiveTrivia
	EndIfDirectiveTrivia
	RegionDirectiveTrivia
	EndRegionDirectiveTrivia
	DefineDirectiveTrivia
	UndefDirectiveTrivia
	ErrorDirectiveTrivia
	WarningDirectiveTrivia
	LineDirectiveTrivia
	PragmaWarningDirectiveTrivia
	NullableDirectiveTrivia
	BadDirectiveTrivia

	// ===== declarations =====
	CompilationUnit
	UsingDirective
	NamespaceDeclaration
	ClassDeclaration
	StructDeclaration
	InterfaceDeclaration
	EnumDeclaration
	EnumMemberDeclaration
	FieldDeclaration
	MethodDeclaration
	PropertyDeclaration
	AccessorList
	GetAccessorDeclaration
	SetAccessorDeclaration
	ParameterList
	Parameter
	TypeParameterList
	TypeParameter
	BaseList
	SimpleBaseType
	AttributeList
	Attribute
	AttributeArgumentList
	AttributeArgument
	VariableDeclaration
	VariableDeclarator
	EqualsValueClause
	ArrowExpressionClause

	// ===== types =====
	PredefinedType
	IdentifierName
	QualifiedName
	GenericName
	TypeArgumentList
	NullableType
	ArrayType
	ArrayRankSpecifier
	OmittedArraySizeExpression

	// ===== statements =====
	Block
	LocalDeclarationStatement
	ExpressionStatement
	ReturnStatement
	IfStatement
	ElseClause
	WhileStatement
	EmptyStatement

	// ===== expressions =====
	NumericLiteralExpression
	StringLiteralExpression
	CharacterLiteralExpression
	TrueLiteralExpression
	FalseLiteralExpression
	NullLiteralExpression
	SimpleMemberAccessExpression
	InvocationExpression
	ArgumentList
	Argument
	NameColon
	ElementAccessExpression
	BracketedArgumentList
	ObjectCreationExpression
	ParenthesizedExpression
	ThisExpression
	UnaryPlusExpression
	UnaryMinusExpression
	LogicalNotExpression
	BitwiseNotExpression
	AddExpression
	SubtractExpression
	MultiplyExpression
	DivideExpression
	ModuloExpression
	LogicalOrExpression
	LogicalAndExpression
	BitwiseOrExpression
	BitwiseAndExpression
	ExclusiveOrExpression
	EqualsExpression
	NotEqualsExpression
	LessThanExpression
	LessThanOrEqualExpression
	GreaterThanExpression
	GreaterThanOrEqualExpression
	CoalesceExpression
	SimpleAssignmentExpression
	AddAssignmentExpression
	SubtractAssignmentExpression
	MultiplyAssignmentExpression
	DivideAssignmentExpression
	ConditionalExpression
	InterpolatedStringExpression
	InterpolatedStringText
	Interpolation
	InterpolationFormatClause

	// ===== documentation XML =====
	XmlText
	XmlElement
	XmlElementStartTag
	XmlElementEndTag
	XmlEmptyElement
	XmlName
	XmlTextAttribute
	XmlCrefAttribute
	NameMemberCref
	TypeCref

	kindCount
)
