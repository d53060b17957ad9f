package syntax

type kindClass uint8

const (
	classNone kindClass = iota
	classPunct
	classKeyword
	classToken
	classTrivia
	classStructured
	classNode
)

type kindInfo struct {
	name  string
	text  string
	class kindClass
}

var kindInfos = [kindCount]kindInfo{
	None: {"None", "", classNone},

	TildeToken:              {"TildeToken", "~", classPunct},
	ExclamationToken:        {"ExclamationToken", "!", classPunct},
	PercentToken:            {"PercentToken", "%", classPunct},
	CaretToken:              {"CaretToken", "^", classPunct},
	AmpersandToken:          {"AmpersandToken", "&", classPunct},
	AsteriskToken:           {"AsteriskToken", "*", classPunct},
	OpenParenToken:          {"OpenParenToken", "(", classPunct},
	CloseParenToken:         {"CloseParenToken", ")", classPunct},
	MinusToken:              {"MinusToken", "-", classPunct},
	PlusToken:               {"PlusToken", "+", classPunct},
	EqualsToken:             {"EqualsToken", "=", classPunct},
	OpenBraceToken:          {"OpenBraceToken", "{", classPunct},
	CloseBraceToken:         {"CloseBraceToken", "}", classPunct},
	OpenBracketToken:        {"OpenBracketToken", "[", classPunct},
	CloseBracketToken:       {"CloseBracketToken", "]", classPunct},
	BarToken:                {"BarToken", "|", classPunct},
	ColonToken:              {"ColonToken", ":", classPunct},
	SemicolonToken:          {"SemicolonToken", ";", classPunct},
	DoubleQuoteToken:        {"DoubleQuoteToken", "\"", classPunct},
	SingleQuoteToken:        {"SingleQuoteToken", "'", classPunct},
	LessThanToken:           {"LessThanToken", "<", classPunct},
	CommaToken:              {"CommaToken", ",", classPunct},
	GreaterThanToken:        {"GreaterThanToken", ">", classPunct},
	DotToken:                {"DotToken", ".", classPunct},
	QuestionToken:           {"QuestionToken", "?", classPunct},
	HashToken:               {"HashToken", "#", classPunct},
	SlashToken:              {"SlashToken", "/", classPunct},
	SlashGreaterThanToken:   {"SlashGreaterThanToken", "/>", classPunct},
	LessThanSlashToken:      {"LessThanSlashToken", "</", classPunct},
	BarBarToken:             {"BarBarToken", "||", classPunct},
	AmpersandAmpersandToken: {"AmpersandAmpersandToken", "&&", classPunct},
	ExclamationEqualsToken:  {"ExclamationEqualsToken", "!=", classPunct},
	EqualsEqualsToken:       {"EqualsEqualsToken", "==", classPunct},
	EqualsGreaterThanToken:  {"EqualsGreaterThanToken", "=>", classPunct},
	LessThanEqualsToken:     {"LessThanEqualsToken", "<=", classPunct},
	GreaterThanEqualsToken:  {"GreaterThanEqualsToken", ">=", classPunct},
	QuestionQuestionToken:   {"QuestionQuestionToken", "??", classPunct},
	PlusEqualsToken:         {"PlusEqualsToken", "+=", classPunct},
	MinusEqualsToken:        {"MinusEqualsToken", "-=", classPunct},
	AsteriskEqualsToken:     {"AsteriskEqualsToken", "*=", classPunct},
	SlashEqualsToken:        {"SlashEqualsToken", "/=", classPunct},

	BoolKeyword:        {"BoolKeyword", "bool", classKeyword},
	ByteKeyword:        {"ByteKeyword", "byte", classKeyword},
	CharKeyword:        {"CharKeyword", "char", classKeyword},
	DecimalKeyword:     {"DecimalKeyword", "decimal", classKeyword},
	DoubleKeyword:      {"DoubleKeyword", "double", classKeyword},
	FloatKeyword:       {"FloatKeyword", "float", classKeyword},
	IntKeyword:         {"IntKeyword", "int", classKeyword},
	LongKeyword:        {"LongKeyword", "long", classKeyword},
	ObjectKeyword:      {"ObjectKeyword", "object", classKeyword},
	ShortKeyword:       {"ShortKeyword", "short", classKeyword},
	StringKeyword:      {"StringKeyword", "string", classKeyword},
	UIntKeyword:        {"UIntKeyword", "uint", classKeyword},
	ULongKeyword:       {"ULongKeyword", "ulong", classKeyword},
	VoidKeyword:        {"VoidKeyword", "void", classKeyword},
	NullKeyword:        {"NullKeyword", "null", classKeyword},
	TrueKeyword:        {"TrueKeyword", "true", classKeyword},
	FalseKeyword:       {"FalseKeyword", "false", classKeyword},
	IfKeyword:          {"IfKeyword", "if", classKeyword},
	ElseKeyword:        {"ElseKeyword", "else", classKeyword},
	WhileKeyword:       {"WhileKeyword", "while", classKeyword},
	ReturnKeyword:      {"ReturnKeyword", "return", classKeyword},
	NewKeyword:         {"NewKeyword", "new", classKeyword},
	ThisKeyword:        {"ThisKeyword", "this", classKeyword},
	PublicKeyword:      {"PublicKeyword", "public", classKeyword},
	PrivateKeyword:     {"PrivateKeyword", "private", classKeyword},
	InternalKeyword:    {"InternalKeyword", "internal", classKeyword},
	ProtectedKeyword:   {"ProtectedKeyword", "protected", classKeyword},
	StaticKeyword:      {"StaticKeyword", "static", classKeyword},
	ReadOnlyKeyword:    {"ReadOnlyKeyword", "readonly", classKeyword},
	SealedKeyword:      {"SealedKeyword", "sealed", classKeyword},
	ConstKeyword:       {"ConstKeyword", "const", classKeyword},
	AbstractKeyword:    {"AbstractKeyword", "abstract", classKeyword},
	VirtualKeyword:     {"VirtualKeyword", "virtual", classKeyword},
	OverrideKeyword:    {"OverrideKeyword", "override", classKeyword},
	RefKeyword:         {"RefKeyword", "ref", classKeyword},
	OutKeyword:         {"OutKeyword", "out", classKeyword},
	InKeyword:          {"InKeyword", "in", classKeyword},
	ParamsKeyword:      {"ParamsKeyword", "params", classKeyword},
	ClassKeyword:       {"ClassKeyword", "class", classKeyword},
	StructKeyword:      {"StructKeyword", "struct", classKeyword},
	InterfaceKeyword:   {"InterfaceKeyword", "interface", classKeyword},
	EnumKeyword:        {"EnumKeyword", "enum", classKeyword},
	NamespaceKeyword:   {"NamespaceKeyword", "namespace", classKeyword},
	UsingKeyword:       {"UsingKeyword", "using", classKeyword},
	DefaultKeyword:     {"DefaultKeyword", "default", classKeyword},
	GetKeyword:         {"GetKeyword", "get", classKeyword},
	SetKeyword:         {"SetKeyword", "set", classKeyword},
	ElifKeyword:        {"ElifKeyword", "elif", classKeyword},
	EndIfKeyword:       {"EndIfKeyword", "endif", classKeyword},
	RegionKeyword:      {"RegionKeyword", "region", classKeyword},
	EndRegionKeyword:   {"EndRegionKeyword", "endregion", classKeyword},
	DefineKeyword:      {"DefineKeyword", "define", classKeyword},
	UndefKeyword:       {"UndefKeyword", "undef", classKeyword},
	LineKeyword:        {"LineKeyword", "line", classKeyword},
	PragmaKeyword:      {"PragmaKeyword", "pragma", classKeyword},
	WarningKeyword:     {"WarningKeyword", "warning", classKeyword},
	ErrorKeyword:       {"ErrorKeyword", "error", classKeyword},
	DisableKeyword:     {"DisableKeyword", "disable", classKeyword},
	RestoreKeyword:     {"RestoreKeyword", "restore", classKeyword},
	HiddenKeyword:      {"HiddenKeyword", "hidden", classKeyword},
	NullableKeyword:    {"NullableKeyword", "nullable", classKeyword},
	EnableKeyword:      {"EnableKeyword", "enable", classKeyword},
	WarningsKeyword:    {"WarningsKeyword", "warnings", classKeyword},
	AnnotationsKeyword: {"AnnotationsKeyword", "annotations", classKeyword},

	IdentifierToken:                      {"IdentifierToken", "", classToken},
	NumericLiteralToken:                  {"NumericLiteralToken", "", classToken},
	CharacterLiteralToken:                {"CharacterLiteralToken", "", classToken},
	StringLiteralToken:                   {"StringLiteralToken", "", classToken},
	InterpolatedStringStartToken:         {"InterpolatedStringStartToken", "$\"", classPunct},
	InterpolatedVerbatimStringStartToken: {"InterpolatedVerbatimStringStartToken", "$@\"", classPunct},
	InterpolatedStringEndToken:           {"InterpolatedStringEndToken", "\"", classPunct},
	InterpolatedStringTextToken:          {"InterpolatedStringTextToken", "", classToken},
	XmlTextLiteralToken:                  {"XmlTextLiteralToken", "", classToken},
	XmlTextLiteralNewLineToken:           {"XmlTextLiteralNewLineToken", "", classToken},
	EndOfDirectiveToken:                  {"EndOfDirectiveToken", "", classPunct},
	EndOfDocumentationCommentToken:       {"EndOfDocumentationCommentToken", "", classPunct},
	EndOfFileToken:                       {"EndOfFileToken", "", classPunct},
	OmittedArraySizeExpressionToken:      {"OmittedArraySizeExpressionToken", "", classPunct},
	BadToken:                             {"BadToken", "", classToken},

	EndOfLineTrivia:                    {"EndOfLineTrivia", "", classTrivia},
	WhitespaceTrivia:                   {"WhitespaceTrivia", "", classTrivia},
	SingleLineCommentTrivia:            {"SingleLineCommentTrivia", "", classTrivia},
	MultiLineCommentTrivia:             {"MultiLineCommentTrivia", "", classTrivia},
	DocumentationCommentExteriorTrivia: {"DocumentationCommentExteriorTrivia", "", classTrivia},
	DisabledTextTrivia:                 {"DisabledTextTrivia", "", classTrivia},
	PreprocessingMessageTrivia:         {"PreprocessingMessageTrivia", "", classTrivia},

	SingleLineDocumentationCommentTrivia: {"SingleLineDocumentationCommentTrivia", "", classStructured},
	IfDirectiveTrivia:                    {"IfDirectiveTrivia", "", classStructured},
	ElifDirectiveTrivia:                  {"ElifDirectiveTrivia", "", classStructured},
	ElseDirectiveTrivia:                  {"ElseDirectiveTrivia", "", classStructured},
	EndIfDirectiveTrivia:                 {"EndIfDirectiveTrivia", "", classStructured},
	RegionDirectiveTrivia:                {"RegionDirectiveTrivia", "", classStructured},
	EndRegionDirectiveTrivia:             {"EndRegionDirectiveTrivia", "", classStructured},
	DefineDirectiveTrivia:                {"DefineDirectiveTrivia", "", classStructured},
	UndefDirectiveTrivia:                 {"UndefDirectiveTrivia", "", classStructured},
	ErrorDirectiveTrivia:                 {"ErrorDirectiveTrivia", "", classStructured},
	WarningDirectiveTrivia:               {"WarningDirectiveTrivia", "", classStructured},
	LineDirectiveTrivia:                  {"LineDirectiveTrivia", "", classStructured},
	PragmaWarningDirectiveTrivia:         {"PragmaWarningDirectiveTrivia", "", classStructured},
	NullableDirectiveTrivia:              {"NullableDirectiveTrivia", "", classStructured},
	BadDirectiveTrivia:                   {"BadDirectiveTrivia", "", classStructured},

	CompilationUnit:        {"CompilationUnit", "", classNode},
	UsingDirective:         {"UsingDirective", "", classNode},
	NamespaceDeclaration:   {"NamespaceDeclaration", "", classNode},
	ClassDeclaration:       {"ClassDeclaration", "", classNode},
	StructDeclaration:      {"StructDeclaration", "", classNode},
	InterfaceDeclaration:   {"InterfaceDeclaration", "", classNode},
	EnumDeclaration:        {"EnumDeclaration", "", classNode},
	EnumMemberDeclaration:  {"EnumMemberDeclaration", "", classNode},
	FieldDeclaration:       {"FieldDeclaration", "", classNode},
	MethodDeclaration:      {"MethodDeclaration", "", classNode},
	PropertyDeclaration:    {"PropertyDeclaration", "", classNode},
	AccessorList:           {"AccessorList", "", classNode},
	GetAccessorDeclaration: {"GetAccessorDeclaration", "", classNode},
	SetAccessorDeclaration: {"SetAccessorDeclaration", "", classNode},
	ParameterList:          {"ParameterList", "", classNode},
	Parameter:              {"Parameter", "", classNode},
	TypeParameterList:      {"TypeParameterList", "", classNode},
	TypeParameter:          {"TypeParameter", "", classNode},
	BaseList:               {"BaseList", "", classNode},
	SimpleBaseType:         {"SimpleBaseType", "", classNode},
	AttributeList:          {"AttributeList", "", classNode},
	Attribute:              {"Attribute", "", classNode},
	AttributeArgumentList:  {"AttributeArgumentList", "", classNode},
	AttributeArgument:      {"AttributeArgument", "", classNode},
	VariableDeclaration:    {"VariableDeclaration", "", classNode},
	VariableDeclarator:     {"VariableDeclarator", "", classNode},
	EqualsValueClause:      {"EqualsValueClause", "", classNode},
	ArrowExpressionClause:  {"ArrowExpressionClause", "", classNode},

	PredefinedType:             {"PredefinedType", "", classNode},
	IdentifierName:             {"IdentifierName", "", classNode},
	QualifiedName:              {"QualifiedName", "", classNode},
	GenericName:                {"GenericName", "", classNode},
	TypeArgumentList:           {"TypeArgumentList", "", classNode},
	NullableType:               {"NullableType", "", classNode},
	ArrayType:                  {"ArrayType", "", classNode},
	ArrayRankSpecifier:         {"ArrayRankSpecifier", "", classNode},
	OmittedArraySizeExpression: {"OmittedArraySizeExpression", "", classNode},

	Block:                     {"Block", "", classNode},
	LocalDeclarationStatement: {"LocalDeclarationStatement", "", classNode},
	ExpressionStatement:       {"ExpressionStatement", "", classNode},
	ReturnStatement:           {"ReturnStatement", "", classNode},
	IfStatement:               {"IfStatement", "", classNode},
	ElseClause:                {"ElseClause", "", classNode},
	WhileStatement:            {"WhileStatement", "", classNode},
	EmptyStatement:            {"EmptyStatement", "", classNode},

	NumericLiteralExpression:     {"NumericLiteralExpression", "", classNode},
	StringLiteralExpression:      {"StringLiteralExpression", "", classNode},
	CharacterLiteralExpression:   {"CharacterLiteralExpression", "", classNode},
	TrueLiteralExpression:        {"TrueLiteralExpression", "", classNode},
	FalseLiteralExpression:       {"FalseLiteralExpression", "", classNode},
	NullLiteralExpression:        {"NullLiteralExpression", "", classNode},
	SimpleMemberAccessExpression: {"SimpleMemberAccessExpression", "", classNode},
	InvocationExpression:         {"InvocationExpression", "", classNode},
	ArgumentList:                 {"ArgumentList", "", classNode},
	Argument:                     {"Argument", "", classNode},
	NameColon:                    {"NameColon", "", classNode},
	ElementAccessExpression:      {"ElementAccessExpression", "", classNode},
	BracketedArgumentList:        {"BracketedArgumentList", "", classNode},
	ObjectCreationExpression:     {"ObjectCreationExpression", "", classNode},
	ParenthesizedExpression:      {"ParenthesizedExpression", "", classNode},
	ThisExpression:               {"ThisExpression", "", classNode},
	UnaryPlusExpression:          {"UnaryPlusExpression", "", classNode},
	UnaryMinusExpression:         {"UnaryMinusExpression", "", classNode},
	LogicalNotExpression:         {"LogicalNotExpression", "", classNode},
	BitwiseNotExpression:         {"BitwiseNotExpression", "", classNode},
	AddExpression:                {"AddExpression", "", classNode},
	SubtractExpression:           {"SubtractExpression", "", classNode},
	MultiplyExpression:           {"MultiplyExpression", "", classNode},
	DivideExpression:             {"DivideExpression", "", classNode},
	ModuloExpression:             {"ModuloExpression", "", classNode},
	LogicalOrExpression:          {"LogicalOrExpression", "", classNode},
	LogicalAndExpression:         {"LogicalAndExpression", "", classNode},
	BitwiseOrExpression:          {"BitwiseOrExpression", "", classNode},
	BitwiseAndExpression:         {"BitwiseAndExpression", "", classNode},
	ExclusiveOrExpression:        {"ExclusiveOrExpression", "", classNode},
	EqualsExpression:             {"EqualsExpression", "", classNode},
	NotEqualsExpression:          {"NotEqualsExpression", "", classNode},
	LessThanExpression:           {"LessThanExpression", "", classNode},
	LessThanOrEqualExpression:    {"LessThanOrEqualExpression", "", classNode},
	GreaterThanExpression:        {"GreaterThanExpression", "", classNode},
	GreaterThanOrEqualExpression: {"GreaterThanOrEqualExpression", "", classNode},
	CoalesceExpression:           {"CoalesceExpression", "", classNode},
	SimpleAssignmentExpression:   {"SimpleAssignmentExpression", "", classNode},
	AddAssignmentExpression:      {"AddAssignmentExpression", "", classNode},
	SubtractAssignmentExpression: {"SubtractAssignmentExpression", "", classNode},
	MultiplyAssignmentExpression: {"MultiplyAssignmentExpression", "", classNode},
	DivideAssignmentExpression:   {"DivideAssignmentExpression", "", classNode},
	ConditionalExpression:        {"ConditionalExpression", "", classNode},
	InterpolatedStringExpression: {"InterpolatedStringExpression", "", classNode},
	InterpolatedStringText:       {"InterpolatedStringText", "", classNode},
	Interpolation:                {"Interpolation", "", classNode},
	InterpolationFormatClause:    {"InterpolationFormatClause", "", classNode},

	XmlText:            {"XmlText", "", classNode},
	XmlElement:         {"XmlElement", "", classNode},
	XmlElementStartTag: {"XmlElementStartTag", "", classNode},
	XmlElementEndTag:   {"XmlElementEndTag", "", classNode},
	XmlEmptyElement:    {"XmlEmptyElement", "", classNode},
	XmlName:            {"XmlName", "", classNode},
	XmlTextAttribute:   {"XmlTextAttribute", "", classNode},
	XmlCrefAttribute:   {"XmlCrefAttribute", "", classNode},
	NameMemberCref:     {"NameMemberCref", "", classNode},
	TypeCref:           {"TypeCref", "", classNode},
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(1); k < kindCount; k++ {
		m[kindInfos[k].name] = k
	}
	return m
}()

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kindInfo{}
	}
	return kindInfos[k]
}

// String returns the builder-facing name of the kind.
func (k Kind) String() string {
	if name := k.info().name; name != "" {
		return name
	}
	return "Kind(?)"
}

// Text returns the fixed spelling of punctuation and keyword kinds, or "" for
// kinds whose text varies.
func (k Kind) Text() string { return k.info().text }

// LookupKind resolves a builder-facing kind name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// IsToken reports whether k is a token kind.
func (k Kind) IsToken() bool {
	switch k.info().class {
	case classPunct, classKeyword, classToken:
		return true
	}
	return false
}

// IsKeyword reports whether k is a reserved, contextual or preprocessor keyword.
func (k Kind) IsKeyword() bool { return k.info().class == classKeyword }

// IsPunctuation reports whether k is a fixed-text non-keyword token.
func (k Kind) IsPunctuation() bool { return k.info().class == classPunct }

// HasFixedText reports whether tokens of kind k spell Kind.Text. The one
// alternate spelling is @$" for InterpolatedVerbatimStringStartToken.
// Zero-width tokens (end of file/directive/comment) count as fixed.
func (k Kind) HasFixedText() bool {
	c := k.info().class
	return c == classPunct || c == classKeyword
}

// IsTrivia reports whether k is a trivia kind (plain or structured).
func (k Kind) IsTrivia() bool {
	c := k.info().class
	return c == classTrivia || c == classStructured
}

// IsStructuredTrivia reports whether trivia of kind k carries a node.
func (k Kind) IsStructuredTrivia() bool { return k.info().class == classStructured }

// IsNode reports whether k may label a Node.
func (k Kind) IsNode() bool {
	c := k.info().class
	return c == classNode || c == classStructured
}

// IsDirective reports whether k is a preprocessor directive trivia kind.
func (k Kind) IsDirective() bool {
	return k >= IfDirectiveTrivia && k <= BadDirectiveTrivia
}

// IsLiteralToken reports whether k is a literal token kind handled by the
// literal encoder.
func (k Kind) IsLiteralToken() bool {
	switch k {
	case NumericLiteralToken, CharacterLiteralToken, StringLiteralToken:
		return true
	}
	return false
}

// Kinds returns every kind except None, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := Kind(1); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
