package syntax

import "strings"

// SlotDesc describes one slot of a node kind.
type SlotDesc struct {
	Name     string // camelCase, как в фабриках построителя
	Kind     SlotKind
	Optional bool
	// Tokens lists accepted token kinds for token slots; Tokens[0] is the one
	// synthesized when a factory does not receive the slot.
	Tokens []Kind
	// Type names the child type: the element type of lists, the node type of
	// node slots.
	Type string
}

// Schema returns the fixed slot layout of a node kind, or nil for kinds that
// are not nodes.
func Schema(k Kind) []SlotDesc {
	if int(k) >= len(schemas) {
		return nil
	}
	return schemas[k]
}

// SlotIndex finds a slot by case-insensitive name; -1 if absent.
func SlotIndex(k Kind, name string) int {
	for i, d := range Schema(k) {
		if strings.EqualFold(d.Name, name) {
			return i
		}
	}
	return -1
}

func tok(name string, kinds ...Kind) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotToken, Tokens: kinds}
}

func optTok(name string, kinds ...Kind) SlotDesc {
	d := tok(name, kinds...)
	d.Optional = true
	return d
}

func child(name, typ string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotNode, Type: typ}
}

func optChild(name, typ string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotNode, Type: typ, Optional: true}
}

func list(name, elem string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotList, Type: elem, Optional: true}
}

func sepList(name, elem string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotSeparatedList, Type: elem, Optional: true}
}

func tokList(name string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotTokenList, Optional: true}
}

func flag(name string) SlotDesc {
	return SlotDesc{Name: name, Kind: SlotFlag, Optional: true}
}

var (
	attrLists = list("attributeLists", "AttributeListSyntax")
	modifiers = tokList("modifiers")
)

var schemas = buildSchemas()

func buildSchemas() [][]SlotDesc {
	s := make([][]SlotDesc, kindCount)

	s[CompilationUnit] = []SlotDesc{
		list("usings", "UsingDirectiveSyntax"),
		list("members", "MemberDeclarationSyntax"),
		tok("endOfFileToken", EndOfFileToken),
	}
	s[UsingDirective] = []SlotDesc{
		tok("usingKeyword", UsingKeyword),
		child("name", "NameSyntax"),
		tok("semicolonToken", SemicolonToken),
	}
	s[NamespaceDeclaration] = []SlotDesc{
		tok("namespaceKeyword", NamespaceKeyword),
		child("name", "NameSyntax"),
		tok("openBraceToken", OpenBraceToken),
		list("usings", "UsingDirectiveSyntax"),
		list("members", "MemberDeclarationSyntax"),
		tok("closeBraceToken", CloseBraceToken),
		optTok("semicolonToken", SemicolonToken),
	}
	typeDecl := func(kw Kind) []SlotDesc {
		return []SlotDesc{
			attrLists,
			modifiers,
			tok("keyword", kw),
			tok("identifier", IdentifierToken),
			optChild("typeParameterList", "TypeParameterListSyntax"),
			optChild("baseList", "BaseListSyntax"),
			tok("openBraceToken", OpenBraceToken),
			list("members", "MemberDeclarationSyntax"),
			tok("closeBraceToken", CloseBraceToken),
			optTok("semicolonToken", SemicolonToken),
		}
	}
	s[ClassDeclaration] = typeDecl(ClassKeyword)
	s[StructDeclaration] = typeDecl(StructKeyword)
	s[InterfaceDeclaration] = typeDecl(InterfaceKeyword)
	s[EnumDeclaration] = []SlotDesc{
		attrLists,
		modifiers,
		tok("enumKeyword", EnumKeyword),
		tok("identifier", IdentifierToken),
		optChild("baseList", "BaseListSyntax"),
		tok("openBraceToken", OpenBraceToken),
		sepList("members", "EnumMemberDeclarationSyntax"),
		tok("closeBraceToken", CloseBraceToken),
		optTok("semicolonToken", SemicolonToken),
	}
	s[EnumMemberDeclaration] = []SlotDesc{
		attrLists,
		tok("identifier", IdentifierToken),
		optChild("equalsValue", "EqualsValueClauseSyntax"),
	}
	s[FieldDeclaration] = []SlotDesc{
		attrLists,
		modifiers,
		child("declaration", "VariableDeclarationSyntax"),
		tok("semicolonToken", SemicolonToken),
	}
	s[MethodDeclaration] = []SlotDesc{
		attrLists,
		modifiers,
		child("returnType", "TypeSyntax"),
		tok("identifier", IdentifierToken),
		optChild("typeParameterList", "TypeParameterListSyntax"),
		child("parameterList", "ParameterListSyntax"),
		optChild("body", "BlockSyntax"),
		optChild("expressionBody", "ArrowExpressionClauseSyntax"),
		optTok("semicolonToken", SemicolonToken),
	}
	s[PropertyDeclaration] = []SlotDesc{
		attrLists,
		modifiers,
		child("type", "TypeSyntax"),
		tok("identifier", IdentifierToken),
		optChild("accessorList", "AccessorListSyntax"),
		optChild("expressionBody", "ArrowExpressionClauseSyntax"),
		optChild("initializer", "EqualsValueClauseSyntax"),
		optTok("semicolonToken", SemicolonToken),
	}
	s[AccessorList] = []SlotDesc{
		tok("openBraceToken", OpenBraceToken),
		list("accessors", "AccessorDeclarationSyntax"),
		tok("closeBraceToken", CloseBraceToken),
	}
	accessor := func(kw Kind) []SlotDesc {
		return []SlotDesc{
			attrLists,
			modifiers,
			tok("keyword", kw),
			optChild("body", "BlockSyntax"),
			optChild("expressionBody", "ArrowExpressionClauseSyntax"),
			optTok("semicolonToken", SemicolonToken),
		}
	}
	s[GetAccessorDeclaration] = accessor(GetKeyword)
	s[SetAccessorDeclaration] = accessor(SetKeyword)
	s[ParameterList] = []SlotDesc{
		tok("openParenToken", OpenParenToken),
		sepList("parameters", "ParameterSyntax"),
		tok("closeParenToken", CloseParenToken),
	}
	s[Parameter] = []SlotDesc{
		attrLists,
		modifiers,
		optChild("type", "TypeSyntax"),
		tok("identifier", IdentifierToken),
		optChild("default", "EqualsValueClauseSyntax"),
	}
	s[TypeParameterList] = []SlotDesc{
		tok("lessThanToken", LessThanToken),
		sepList("parameters", "TypeParameterSyntax"),
		tok("greaterThanToken", GreaterThanToken),
	}
	s[TypeParameter] = []SlotDesc{
		attrLists,
		optTok("varianceKeyword", InKeyword, OutKeyword),
		tok("identifier", IdentifierToken),
	}
	s[BaseList] = []SlotDesc{
		tok("colonToken", ColonToken),
		sepList("types", "BaseTypeSyntax"),
	}
	s[SimpleBaseType] = []SlotDesc{child("type", "TypeSyntax")}
	s[AttributeList] = []SlotDesc{
		tok("openBracketToken", OpenBracketToken),
		sepList("attributes", "AttributeSyntax"),
		tok("closeBracketToken", CloseBracketToken),
	}
	s[Attribute] = []SlotDesc{
		child("name", "NameSyntax"),
		optChild("argumentList", "AttributeArgumentListSyntax"),
	}
	s[AttributeArgumentList] = []SlotDesc{
		tok("openParenToken", OpenParenToken),
		sepList("arguments", "AttributeArgumentSyntax"),
		tok("closeParenToken", CloseParenToken),
	}
	s[AttributeArgument] = []SlotDesc{
		optChild("nameColon", "NameColonSyntax"),
		child("expression", "ExpressionSyntax"),
	}
	s[VariableDeclaration] = []SlotDesc{
		child("type", "TypeSyntax"),
		sepList("variables", "VariableDeclaratorSyntax"),
	}
	s[VariableDeclarator] = []SlotDesc{
		tok("identifier", IdentifierToken),
		optChild("initializer", "EqualsValueClauseSyntax"),
	}
	s[EqualsValueClause] = []SlotDesc{
		tok("equalsToken", EqualsToken),
		child("value", "ExpressionSyntax"),
	}
	s[ArrowExpressionClause] = []SlotDesc{
		tok("arrowToken", EqualsGreaterThanToken),
		child("expression", "ExpressionSyntax"),
	}

	s[PredefinedType] = []SlotDesc{tok("keyword", PredefinedTypeKeywords...)}
	s[IdentifierName] = []SlotDesc{tok("identifier", IdentifierToken)}
	s[QualifiedName] = []SlotDesc{
		child("left", "NameSyntax"),
		tok("dotToken", DotToken),
		child("right", "SimpleNameSyntax"),
	}
	s[GenericName] = []SlotDesc{
		tok("identifier", IdentifierToken),
		child("typeArgumentList", "TypeArgumentListSyntax"),
	}
	s[TypeArgumentList] = []SlotDesc{
		tok("lessThanToken", LessThanToken),
		sepList("arguments", "TypeSyntax"),
		tok("greaterThanToken", GreaterThanToken),
	}
	s[NullableType] = []SlotDesc{
		child("elementType", "TypeSyntax"),
		tok("questionToken", QuestionToken),
	}
	s[ArrayType] = []SlotDesc{
		child("elementType", "TypeSyntax"),
		list("rankSpecifiers", "ArrayRankSpecifierSyntax"),
	}
	s[ArrayRankSpecifier] = []SlotDesc{
		tok("openBracketToken", OpenBracketToken),
		sepList("sizes", "ExpressionSyntax"),
		tok("closeBracketToken", CloseBracketToken),
	}
	s[OmittedArraySizeExpression] = []SlotDesc{
		tok("omittedArraySizeExpressionToken", OmittedArraySizeExpressionToken),
	}

	s[Block] = []SlotDesc{
		tok("openBraceToken", OpenBraceToken),
		list("statements", "StatementSyntax"),
		tok("closeBraceToken", CloseBraceToken),
	}
	s[LocalDeclarationStatement] = []SlotDesc{
		modifiers,
		child("declaration", "VariableDeclarationSyntax"),
		tok("semicolonToken", SemicolonToken),
	}
	s[ExpressionStatement] = []SlotDesc{
		child("expression", "ExpressionSyntax"),
		tok("semicolonToken", SemicolonToken),
	}
	s[ReturnStatement] = []SlotDesc{
		tok("returnKeyword", ReturnKeyword),
		optChild("expression", "ExpressionSyntax"),
		tok("semicolonToken", SemicolonToken),
	}
	s[IfStatement] = []SlotDesc{
		tok("ifKeyword", IfKeyword),
		tok("openParenToken", OpenParenToken),
		child("condition", "ExpressionSyntax"),
		tok("closeParenToken", CloseParenToken),
		child("statement", "StatementSyntax"),
		optChild("else", "ElseClauseSyntax"),
	}
	s[ElseClause] = []SlotDesc{
		tok("elseKeyword", ElseKeyword),
		child("statement", "StatementSyntax"),
	}
	s[WhileStatement] = []SlotDesc{
		tok("whileKeyword", WhileKeyword),
		tok("openParenToken", OpenParenToken),
		child("condition", "ExpressionSyntax"),
		tok("closeParenToken", CloseParenToken),
		child("statement", "StatementSyntax"),
	}
	s[EmptyStatement] = []SlotDesc{tok("semicolonToken", SemicolonToken)}

	for k, tk := range literalTokens {
		s[k] = []SlotDesc{tok("token", tk)}
	}
	s[SimpleMemberAccessExpression] = []SlotDesc{
		child("expression", "ExpressionSyntax"),
		tok("operatorToken", DotToken),
		child("name", "SimpleNameSyntax"),
	}
	s[InvocationExpression] = []SlotDesc{
		child("expression", "ExpressionSyntax"),
		child("argumentList", "ArgumentListSyntax"),
	}
	s[ArgumentList] = []SlotDesc{
		tok("openParenToken", OpenParenToken),
		sepList("arguments", "ArgumentSyntax"),
		tok("closeParenToken", CloseParenToken),
	}
	s[Argument] = []SlotDesc{
		optChild("nameColon", "NameColonSyntax"),
		optTok("refKindKeyword", RefKeyword, OutKeyword, InKeyword),
		child("expression", "ExpressionSyntax"),
	}
	s[NameColon] = []SlotDesc{
		child("name", "IdentifierNameSyntax"),
		tok("colonToken", ColonToken),
	}
	s[ElementAccessExpression] = []SlotDesc{
		child("expression", "ExpressionSyntax"),
		child("argumentList", "BracketedArgumentListSyntax"),
	}
	s[BracketedArgumentList] = []SlotDesc{
		tok("openBracketToken", OpenBracketToken),
		sepList("arguments", "ArgumentSyntax"),
		tok("closeBracketToken", CloseBracketToken),
	}
	s[ObjectCreationExpression] = []SlotDesc{
		tok("newKeyword", NewKeyword),
		child("type", "TypeSyntax"),
		optChild("argumentList", "ArgumentListSyntax"),
	}
	s[ParenthesizedExpression] = []SlotDesc{
		tok("openParenToken", OpenParenToken),
		child("expression", "ExpressionSyntax"),
		tok("closeParenToken", CloseParenToken),
	}
	s[ThisExpression] = []SlotDesc{tok("token", ThisKeyword)}
	for k, op := range unaryOperators {
		s[k] = []SlotDesc{tok("operatorToken", op), child("operand", "ExpressionSyntax")}
	}
	for k, op := range binaryOperators {
		s[k] = []SlotDesc{
			child("left", "ExpressionSyntax"),
			tok("operatorToken", op),
			child("right", "ExpressionSyntax"),
		}
	}
	for k, op := range assignmentOperators {
		s[k] = []SlotDesc{
			child("left", "ExpressionSyntax"),
			tok("operatorToken", op),
			child("right", "ExpressionSyntax"),
		}
	}
	s[ConditionalExpression] = []SlotDesc{
		child("condition", "ExpressionSyntax"),
		tok("questionToken", QuestionToken),
		child("whenTrue", "ExpressionSyntax"),
		tok("colonToken", ColonToken),
		child("whenFalse", "ExpressionSyntax"),
	}
	s[InterpolatedStringExpression] = []SlotDesc{
		tok("stringStartToken", InterpolatedStringStartToken, InterpolatedVerbatimStringStartToken),
		list("contents", "InterpolatedStringContentSyntax"),
		tok("stringEndToken", InterpolatedStringEndToken),
	}
	s[InterpolatedStringText] = []SlotDesc{tok("textToken", InterpolatedStringTextToken)}
	s[Interpolation] = []SlotDesc{
		tok("openBraceToken", OpenBraceToken),
		child("expression", "ExpressionSyntax"),
		optChild("formatClause", "InterpolationFormatClauseSyntax"),
		tok("closeBraceToken", CloseBraceToken),
	}
	s[InterpolationFormatClause] = []SlotDesc{
		tok("colonToken", ColonToken),
		tok("formatStringToken", InterpolatedStringTextToken),
	}

	s[XmlText] = []SlotDesc{tokList("textTokens")}
	s[XmlElement] = []SlotDesc{
		child("startTag", "XmlElementStartTagSyntax"),
		list("content", "XmlNodeSyntax"),
		child("endTag", "XmlElementEndTagSyntax"),
	}
	s[XmlElementStartTag] = []SlotDesc{
		tok("lessThanToken", LessThanToken),
		child("name", "XmlNameSyntax"),
		list("attributes", "XmlAttributeSyntax"),
		tok("greaterThanToken", GreaterThanToken),
	}
	s[XmlElementEndTag] = []SlotDesc{
		tok("lessThanSlashToken", LessThanSlashToken),
		child("name", "XmlNameSyntax"),
		tok("greaterThanToken", GreaterThanToken),
	}
	s[XmlEmptyElement] = []SlotDesc{
		tok("lessThanToken", LessThanToken),
		child("name", "XmlNameSyntax"),
		list("attributes", "XmlAttributeSyntax"),
		tok("slashGreaterThanToken", SlashGreaterThanToken),
	}
	s[XmlName] = []SlotDesc{tok("localName", IdentifierToken)}
	s[XmlTextAttribute] = []SlotDesc{
		child("name", "XmlNameSyntax"),
		tok("equalsToken", EqualsToken),
		tok("startQuoteToken", DoubleQuoteToken, SingleQuoteToken),
		tokList("textTokens"),
		tok("endQuoteToken", DoubleQuoteToken, SingleQuoteToken),
	}
	s[XmlCrefAttribute] = []SlotDesc{
		child("name", "XmlNameSyntax"),
		tok("equalsToken", EqualsToken),
		tok("startQuoteToken", DoubleQuoteToken, SingleQuoteToken),
		child("cref", "CrefSyntax"),
		tok("endQuoteToken", DoubleQuoteToken, SingleQuoteToken),
	}
	s[NameMemberCref] = []SlotDesc{child("name", "TypeSyntax")}
	s[TypeCref] = []SlotDesc{child("type", "TypeSyntax")}

	s[SingleLineDocumentationCommentTrivia] = []SlotDesc{
		list("content", "XmlNodeSyntax"),
		tok("endOfComment", EndOfDocumentationCommentToken),
	}
	conditional := func(name string, kw Kind) []SlotDesc {
		return []SlotDesc{
			tok("hashToken", HashToken),
			tok(name, kw),
			child("condition", "ExpressionSyntax"),
			tok("endOfDirectiveToken", EndOfDirectiveToken),
			flag("isActive"),
			flag("branchTaken"),
			flag("conditionValue"),
		}
	}
	s[IfDirectiveTrivia] = conditional("ifKeyword", IfKeyword)
	s[ElifDirectiveTrivia] = conditional("elifKeyword", ElifKeyword)
	s[ElseDirectiveTrivia] = []SlotDesc{
		tok("hashToken", HashToken),
		tok("elseKeyword", ElseKeyword),
		tok("endOfDirectiveToken", EndOfDirectiveToken),
		flag("isActive"),
		flag("branchTaken"),
	}
	simple := func(name string, kw Kind) []SlotDesc {
		return []SlotDesc{
			tok("hashToken", HashToken),
			tok(name, kw),
			tok("endOfDirectiveToken", EndOfDirectiveToken),
			flag("isActive"),
		}
	}
	s[EndIfDirectiveTrivia] = simple("endIfKeyword", EndIfKeyword)
	s[RegionDirectiveTrivia] = simple("regionKeyword", RegionKeyword)
	s[EndRegionDirectiveTrivia] = simple("endRegionKeyword", EndRegionKeyword)
	s[ErrorDirectiveTrivia] = simple("errorKeyword", ErrorKeyword)
	s[WarningDirectiveTrivia] = simple("warningKeyword", WarningKeyword)
	symbol := func(name string, kw Kind) []SlotDesc {
		return []SlotDesc{
			tok("hashToken", HashToken),
			tok(name, kw),
			tok("name", IdentifierToken),
			tok("endOfDirectiveToken", EndOfDirectiveToken),
			flag("isActive"),
		}
	}
	s[DefineDirectiveTrivia] = symbol("defineKeyword", DefineKeyword)
	s[UndefDirectiveTrivia] = symbol("undefKeyword", UndefKeyword)
	s[LineDirectiveTrivia] = []SlotDesc{
		tok("hashToken", HashToken),
		tok("lineKeyword", LineKeyword),
		tok("line", NumericLiteralToken, DefaultKeyword, HiddenKeyword),
		optTok("file", StringLiteralToken),
		tok("endOfDirectiveToken", EndOfDirectiveToken),
		flag("isActive"),
	}
	s[PragmaWarningDirectiveTrivia] = []SlotDesc{
		tok("hashToken", HashToken),
		tok("pragmaKeyword", PragmaKeyword),
		tok("warningKeyword", WarningKeyword),
		tok("disableOrRestoreKeyword", DisableKeyword, RestoreKeyword),
		sepList("errorCodes", "ExpressionSyntax"),
		tok("endOfDirectiveToken", EndOfDirectiveToken),
		flag("isActive"),
	}
	s[NullableDirectiveTrivia] = []SlotDesc{
		tok("hashToken", HashToken),
		tok("nullableKeyword", NullableKeyword),
		tok("settingToken", EnableKeyword, DisableKeyword, RestoreKeyword),
		optTok("targetToken", WarningsKeyword, AnnotationsKeyword),
		tok("endOfDirectiveToken", EndOfDirectiveToken),
		flag("isActive"),
	}
	s[BadDirectiveTrivia] = []SlotDesc{
		tok("hashToken", HashToken),
		tok("identifier", IdentifierToken),
		tok("endOfDirectiveToken", EndOfDirectiveToken),
		flag("isActive"),
	}
	return s
}
