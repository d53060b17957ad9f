package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// condFrame — одна открытая группа #if ... #endif.
type condFrame struct {
	parentActive bool // активна ли группа целиком
	anyTaken     bool // уже выбрана одна из ветвей
	branchActive bool // активна текущая ветвь
	sawElse      bool
	span         source.Span
}

func (lx *Lexer) active() bool {
	if n := len(lx.conds); n > 0 {
		return lx.conds[n-1].branchActive
	}
	return true
}

// scanDirective разбирает строку директивы целиком, курсор стоит на '#'.
// Чтение ограничено концом строки; перевод строки становится trailing
// trivia у EndOfDirectiveToken.
func (lx *Lexer) scanDirective() syntax.Trivia {
	start := lx.cursor.Mark()
	saved := lx.cursor.Limit
	lx.cursor.Limit = lx.cursor.LineEnd()
	lineSpan := source.Span{File: lx.file.ID, Start: uint32(start), End: lx.cursor.Limit}

	lx.cursor.Bump()
	hash := newToken(syntax.HashToken, "#", "#")
	hash.Trailing = lx.dirTrailing(false)

	wordStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := lx.cursor.TextFrom(wordStart)
	kw, known := syntax.LookupDirectiveKeyword(word)
	switch kw {
	case syntax.IfKeyword, syntax.ElifKeyword, syntax.ElseKeyword, syntax.EndIfKeyword,
		syntax.RegionKeyword, syntax.EndRegionKeyword, syntax.DefineKeyword, syntax.UndefKeyword,
		syntax.LineKeyword, syntax.PragmaKeyword, syntax.ErrorKeyword, syntax.WarningKeyword,
		syntax.NullableKeyword:
	default:
		known = false
	}

	isActive := lx.active()
	if !known {
		ident := newToken(syntax.IdentifierToken, word, word)
		ident.Trailing = lx.dirTrailing(false)
		lx.report(diag.LexBadDirective, lineSpan, "unknown preprocessor directive")
		n := syntax.Build(syntax.BadDirectiveTrivia,
			syntax.TokenSlot(hash), syntax.TokenSlot(ident),
			syntax.TokenSlot(lx.endOfDirective(true, saved)),
			syntax.FlagSlot(isActive))
		return syntax.Trivia{Kind: n.Kind, Structure: n}
	}

	keyword := newToken(kw, word, word)
	var n *syntax.Node
	switch kw {
	case syntax.IfKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		cond, val := lx.dirCondition()
		branch := isActive && val
		lx.conds = append(lx.conds, condFrame{
			parentActive: isActive, anyTaken: branch, branchActive: branch, span: lineSpan,
		})
		n = syntax.Build(syntax.IfDirectiveTrivia,
			syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.NodeSlot(cond),
			syntax.TokenSlot(lx.endOfDirective(false, saved)),
			syntax.FlagSlot(isActive), syntax.FlagSlot(branch), syntax.FlagSlot(val))

	case syntax.ElifKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		cond, val := lx.dirCondition()
		branch := false
		if fr := lx.topCond(lineSpan, "#elif"); fr != nil {
			if fr.sawElse {
				lx.report(diag.LexUnbalancedDirective, lineSpan, "#elif after #else")
			}
			isActive = fr.parentActive
			branch = isActive && !fr.anyTaken && val
			fr.anyTaken = fr.anyTaken || branch
			fr.branchActive = branch
		}
		n = syntax.Build(syntax.ElifDirectiveTrivia,
			syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.NodeSlot(cond),
			syntax.TokenSlot(lx.endOfDirective(false, saved)),
			syntax.FlagSlot(isActive), syntax.FlagSlot(branch), syntax.FlagSlot(val))

	case syntax.ElseKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		branch := false
		if fr := lx.topCond(lineSpan, "#else"); fr != nil {
			if fr.sawElse {
				lx.report(diag.LexUnbalancedDirective, lineSpan, "duplicate #else")
			}
			fr.sawElse = true
			isActive = fr.parentActive
			branch = isActive && !fr.anyTaken
			fr.anyTaken = fr.anyTaken || branch
			fr.branchActive = branch
		}
		n = syntax.Build(syntax.ElseDirectiveTrivia,
			syntax.TokenSlot(hash), syntax.TokenSlot(keyword),
			syntax.TokenSlot(lx.endOfDirective(false, saved)),
			syntax.FlagSlot(isActive), syntax.FlagSlot(branch))

	case syntax.EndIfKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		if fr := lx.topCond(lineSpan, "#endif"); fr != nil {
			isActive = fr.parentActive
			lx.conds = lx.conds[:len(lx.conds)-1]
		}
		n = lx.simpleDirective(syntax.EndIfDirectiveTrivia, hash, keyword, false, saved, isActive)

	case syntax.RegionKeyword:
		keyword.Trailing = lx.dirTrailing(false)
		n = lx.simpleDirective(syntax.RegionDirectiveTrivia, hash, keyword, true, saved, isActive)
	case syntax.EndRegionKeyword:
		keyword.Trailing = lx.dirTrailing(false)
		n = lx.simpleDirective(syntax.EndRegionDirectiveTrivia, hash, keyword, true, saved, isActive)
	case syntax.ErrorKeyword:
		keyword.Trailing = lx.dirTrailing(false)
		n = lx.simpleDirective(syntax.ErrorDirectiveTrivia, hash, keyword, true, saved, isActive)
		lx.userMessage(n, lineSpan, isActive)
	case syntax.WarningKeyword:
		keyword.Trailing = lx.dirTrailing(false)
		n = lx.simpleDirective(syntax.WarningDirectiveTrivia, hash, keyword, true, saved, isActive)
		lx.userMessage(n, lineSpan, isActive)

	case syntax.DefineKeyword, syntax.UndefKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		name := lx.dirExpect(syntax.IdentifierToken, lineSpan, "expected symbol name", func(t *syntax.Token) bool {
			return t.Kind == syntax.IdentifierToken
		})
		if isActive && name.Text != "" {
			lx.defines[name.ValueText] = kw == syntax.DefineKeyword
		}
		k := syntax.DefineDirectiveTrivia
		if kw == syntax.UndefKeyword {
			k = syntax.UndefDirectiveTrivia
		}
		n = syntax.Build(k,
			syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.TokenSlot(name),
			syntax.TokenSlot(lx.endOfDirective(false, saved)),
			syntax.FlagSlot(isActive))

	case syntax.LineKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		n = lx.lineDirective(hash, keyword, saved, lineSpan, isActive)

	case syntax.PragmaKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		n = lx.pragmaDirective(hash, keyword, saved, lineSpan, isActive)

	case syntax.NullableKeyword:
		keyword.Trailing = lx.dirTrailing(true)
		n = lx.nullableDirective(hash, keyword, saved, lineSpan, isActive)
	}
	return syntax.Trivia{Kind: n.Kind, Structure: n}
}

func (lx *Lexer) simpleDirective(k syntax.Kind, hash, keyword *syntax.Token, message bool, saved uint32, isActive bool) *syntax.Node {
	return syntax.Build(k,
		syntax.TokenSlot(hash), syntax.TokenSlot(keyword),
		syntax.TokenSlot(lx.endOfDirective(message, saved)),
		syntax.FlagSlot(isActive))
}

// userMessage пробрасывает текст #error/#warning предупреждением:
// для цитирования они не фатальны.
func (lx *Lexer) userMessage(n *syntax.Node, sp source.Span, isActive bool) {
	if !isActive {
		return
	}
	msg := "#" + n.Slots[1].Token.Text
	if eod := n.ChildToken("endOfDirectiveToken"); len(eod.Leading) > 0 {
		msg += ": " + eod.Leading[0].Text
	}
	lx.warn(diag.LexInfo, sp, msg)
}

func (lx *Lexer) topCond(sp source.Span, what string) *condFrame {
	if len(lx.conds) == 0 {
		lx.report(diag.LexUnbalancedDirective, sp, what+" without matching #if")
		return nil
	}
	return &lx.conds[len(lx.conds)-1]
}

// #line 200 "file" | #line default | #line hidden
func (lx *Lexer) lineDirective(hash, keyword *syntax.Token, saved uint32, lineSpan source.Span, isActive bool) *syntax.Node {
	line := lx.dirExpect(syntax.NumericLiteralToken, lineSpan, "expected line number, 'default' or 'hidden'", func(t *syntax.Token) bool {
		switch {
		case t.Kind == syntax.NumericLiteralToken, t.Kind == syntax.DefaultKeyword:
			return true
		case t.Kind == syntax.IdentifierToken && t.Text == "hidden":
			t.Kind = syntax.HiddenKeyword
			return true
		}
		return false
	})
	var file *syntax.Token
	if line.Kind == syntax.NumericLiteralToken && lx.dirPeekKind() == syntax.StringLiteralToken {
		file = lx.dirNext()
	}
	return syntax.Build(syntax.LineDirectiveTrivia,
		syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.TokenSlot(line), syntax.TokenSlot(file),
		syntax.TokenSlot(lx.endOfDirective(false, saved)),
		syntax.FlagSlot(isActive))
}

// #pragma warning disable|restore [code {, code}]
func (lx *Lexer) pragmaDirective(hash, keyword *syntax.Token, saved uint32, lineSpan source.Span, isActive bool) *syntax.Node {
	warning := lx.dirExpect(syntax.WarningKeyword, lineSpan, "expected 'warning' after #pragma", wordIs("warning", syntax.WarningKeyword))
	var action *syntax.Token
	if warning.IsMissing() {
		action = missing(syntax.DisableKeyword)
	} else {
		action = lx.dirExpect(syntax.DisableKeyword, lineSpan, "expected 'disable' or 'restore'", func(t *syntax.Token) bool {
			return wordIs("disable", syntax.DisableKeyword)(t) || wordIs("restore", syntax.RestoreKeyword)(t)
		})
	}

	var codes []*syntax.Node
	var seps []*syntax.Token
	if !action.IsMissing() {
		for {
			var code *syntax.Node
			switch lx.dirPeekKind() {
			case syntax.IdentifierToken:
				code = syntax.Build(syntax.IdentifierName, syntax.TokenSlot(lx.dirNext()))
			case syntax.NumericLiteralToken:
				code = syntax.Build(syntax.NumericLiteralExpression, syntax.TokenSlot(lx.dirNext()))
			}
			if code == nil {
				break
			}
			codes = append(codes, code)
			if lx.dirPeekKind() != syntax.CommaToken {
				break
			}
			seps = append(seps, lx.dirNext())
		}
	}
	return syntax.Build(syntax.PragmaWarningDirectiveTrivia,
		syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.TokenSlot(warning), syntax.TokenSlot(action),
		syntax.SeparatedSlot(codes, seps),
		syntax.TokenSlot(lx.endOfDirective(false, saved)),
		syntax.FlagSlot(isActive))
}

// #nullable enable|disable|restore [warnings|annotations]
func (lx *Lexer) nullableDirective(hash, keyword *syntax.Token, saved uint32, lineSpan source.Span, isActive bool) *syntax.Node {
	setting := lx.dirExpect(syntax.EnableKeyword, lineSpan, "expected 'enable', 'disable' or 'restore'", func(t *syntax.Token) bool {
		return wordIs("enable", syntax.EnableKeyword)(t) || wordIs("disable", syntax.DisableKeyword)(t) ||
			wordIs("restore", syntax.RestoreKeyword)(t)
	})
	var target *syntax.Token
	if !setting.IsMissing() {
		target = lx.dirAccept(func(t *syntax.Token) bool {
			return wordIs("warnings", syntax.WarningsKeyword)(t) || wordIs("annotations", syntax.AnnotationsKeyword)(t)
		})
	}
	return syntax.Build(syntax.NullableDirectiveTrivia,
		syntax.TokenSlot(hash), syntax.TokenSlot(keyword), syntax.TokenSlot(setting), syntax.TokenSlot(target),
		syntax.TokenSlot(lx.endOfDirective(false, saved)),
		syntax.FlagSlot(isActive))
}

func wordIs(word string, k syntax.Kind) func(*syntax.Token) bool {
	return func(t *syntax.Token) bool {
		if t.Kind == syntax.IdentifierToken && t.Text == word {
			t.Kind = k
			return true
		}
		return false
	}
}

// endOfDirective завершает строку директивы. Непрочитанный остаток строки
// становится PreprocessingMessageTrivia; для #region/#error и подобных это
// норма, для остальных — ошибка. Граница чтения восстанавливается.
func (lx *Lexer) endOfDirective(message bool, saved uint32) *syntax.Token {
	eod := syntax.NewToken(syntax.EndOfDirectiveToken)
	if !lx.cursor.EOF() {
		m := lx.cursor.Mark()
		lx.cursor.Off = lx.cursor.Limit
		if !message {
			lx.report(diag.LexBadDirective, lx.cursor.SpanFrom(m), "unexpected text after directive")
		}
		eod.Leading = []syntax.Trivia{{Kind: syntax.PreprocessingMessageTrivia, Text: lx.cursor.TextFrom(m)}}
	}
	lx.cursor.Limit = saved
	if isNewline(lx.cursor.Peek()) {
		eod.Trailing = []syntax.Trivia{lx.scanEndOfLine()}
	}
	return eod
}

// dirTrailing: пробелы и, если разрешено, // комментарий до конца строки.
func (lx *Lexer) dirTrailing(comments bool) []syntax.Trivia {
	var out []syntax.Trivia
	if isWhitespace(lx.cursor.Peek()) {
		out = append(out, lx.scanWhitespace())
	}
	if comments && lx.cursor.StartsWith("//") {
		out = append(out, lx.scanLineComment())
	}
	return out
}

// ===== токены и выражения внутри директивы =====

// dirNext сканирует один токен директивы с trailing trivia.
// Возвращает nil на конце строки или на символе вне грамматики директив.
func (lx *Lexer) dirNext() *syntax.Token {
	if lx.cursor.EOF() {
		return nil
	}
	start := lx.cursor.Mark()
	emit := func(k syntax.Kind) *syntax.Token {
		text := lx.cursor.TextFrom(start)
		return newToken(k, text, text)
	}
	var tok *syntax.Token
	b := lx.cursor.Peek()
	switch {
	case isIdentStartByte(b):
		tok = lx.scanIdentOrKeyword()
	case b >= utf8RuneSelf:
		if r, _ := lx.peekRune(); !isIdentStartRune(r) {
			return nil
		}
		tok = lx.scanIdentOrKeyword()
	case isDec(b):
		tok = lx.scanNumber()
	case b == '"':
		tok = lx.scanString()
	case lx.try2('&', '&'):
		tok = emit(syntax.AmpersandAmpersandToken)
	case lx.try2('|', '|'):
		tok = emit(syntax.BarBarToken)
	case lx.try2('=', '='):
		tok = emit(syntax.EqualsEqualsToken)
	case lx.try2('!', '='):
		tok = emit(syntax.ExclamationEqualsToken)
	case b == '!':
		lx.cursor.Bump()
		tok = emit(syntax.ExclamationToken)
	case b == '(':
		lx.cursor.Bump()
		tok = emit(syntax.OpenParenToken)
	case b == ')':
		lx.cursor.Bump()
		tok = emit(syntax.CloseParenToken)
	case b == ',':
		lx.cursor.Bump()
		tok = emit(syntax.CommaToken)
	default:
		return nil
	}
	tok.Trailing = lx.dirTrailing(true)
	return tok
}

// dirPeekKind подсматривает вид следующего токена директивы, None если его нет.
func (lx *Lexer) dirPeekKind() syntax.Kind {
	m := lx.cursor.Mark()
	lx.quiet++
	t := lx.dirNext()
	lx.quiet--
	lx.cursor.Reset(m)
	if t == nil {
		return syntax.None
	}
	return t.Kind
}

// dirExpect потребляет токен, если accept его принимает; иначе курсор
// не сдвигается, репортится ошибка и возвращается пропущенный токен kind.
func (lx *Lexer) dirExpect(k syntax.Kind, sp source.Span, msg string, accept func(*syntax.Token) bool) *syntax.Token {
	if t := lx.dirAccept(accept); t != nil {
		return t
	}
	lx.report(diag.LexBadDirective, sp, msg)
	return missing(k)
}

// dirAccept потребляет токен, если accept его принимает, иначе nil.
func (lx *Lexer) dirAccept(accept func(*syntax.Token) bool) *syntax.Token {
	m := lx.cursor.Mark()
	lx.quiet++
	t := lx.dirNext()
	lx.quiet--
	if t != nil && accept(t) {
		return t
	}
	lx.cursor.Reset(m)
	return nil
}

// dirExpression разбирает и вычисляет условие #if/#elif:
//
//	or    = and { "||" and }
//	and   = eq { "&&" eq }
//	eq    = unary { ("==" | "!=") unary }
//	unary = "!" unary | primary
func (lx *Lexer) dirExpression() (*syntax.Node, bool) {
	left, lv := lx.dirAnd()
	for lx.dirPeekKind() == syntax.BarBarToken {
		op := lx.dirNext()
		right, rv := lx.dirAnd()
		left = binaryNode(syntax.LogicalOrExpression, left, op, right)
		lv = lv || rv
	}
	return left, lv
}

func (lx *Lexer) dirAnd() (*syntax.Node, bool) {
	left, lv := lx.dirEquality()
	for lx.dirPeekKind() == syntax.AmpersandAmpersandToken {
		op := lx.dirNext()
		right, rv := lx.dirEquality()
		left = binaryNode(syntax.LogicalAndExpression, left, op, right)
		lv = lv && rv
	}
	return left, lv
}

func (lx *Lexer) dirEquality() (*syntax.Node, bool) {
	left, lv := lx.dirUnary()
	for {
		switch lx.dirPeekKind() {
		case syntax.EqualsEqualsToken:
			op := lx.dirNext()
			right, rv := lx.dirUnary()
			left, lv = binaryNode(syntax.EqualsExpression, left, op, right), lv == rv
		case syntax.ExclamationEqualsToken:
			op := lx.dirNext()
			right, rv := lx.dirUnary()
			left, lv = binaryNode(syntax.NotEqualsExpression, left, op, right), lv != rv
		default:
			return left, lv
		}
	}
}

// maxDirectiveDepth ограничивает вложенность `!` и скобок в условии.
const maxDirectiveDepth = 256

// dirCondition разбирает условие целиком. После переполнения вложенности
// остальные ошибки условия не репортятся; непрочитанный хвост строки
// уходит в PreprocessingMessageTrivia.
func (lx *Lexer) dirCondition() (*syntax.Node, bool) {
	quiet := lx.quiet
	cond, val := lx.dirExpression()
	lx.quiet = quiet
	return cond, val
}

func (lx *Lexer) dirUnary() (*syntax.Node, bool) {
	lx.dirDepth++
	defer func() { lx.dirDepth-- }()
	if lx.dirDepth > maxDirectiveDepth {
		if lx.dirDepth == maxDirectiveDepth+1 {
			lx.report(diag.LexBadDirective, lx.emptySpan(), "preprocessor expression is nested too deeply")
			lx.quiet++
		}
		return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(missing(syntax.IdentifierToken))), false
	}
	if lx.dirPeekKind() == syntax.ExclamationToken {
		op := lx.dirNext()
		operand, v := lx.dirUnary()
		return syntax.Build(syntax.LogicalNotExpression, syntax.TokenSlot(op), syntax.NodeSlot(operand)), !v
	}
	return lx.dirPrimary()
}

func (lx *Lexer) dirPrimary() (*syntax.Node, bool) {
	switch lx.dirPeekKind() {
	case syntax.OpenParenToken:
		open := lx.dirNext()
		inner, v := lx.dirExpression()
		var closeTok *syntax.Token
		if lx.dirPeekKind() == syntax.CloseParenToken {
			closeTok = lx.dirNext()
		} else {
			lx.report(diag.LexBadDirective, lx.emptySpan(), "expected ')' in preprocessor expression")
			closeTok = missing(syntax.CloseParenToken)
		}
		return syntax.Build(syntax.ParenthesizedExpression,
			syntax.TokenSlot(open), syntax.NodeSlot(inner), syntax.TokenSlot(closeTok)), v
	case syntax.TrueKeyword:
		return syntax.Build(syntax.TrueLiteralExpression, syntax.TokenSlot(lx.dirNext())), true
	case syntax.FalseKeyword:
		return syntax.Build(syntax.FalseLiteralExpression, syntax.TokenSlot(lx.dirNext())), false
	case syntax.IdentifierToken:
		id := lx.dirNext()
		return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(id)), lx.defines[id.ValueText]
	}
	lx.report(diag.LexBadDirective, lx.emptySpan(), "expected preprocessor symbol")
	return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(missing(syntax.IdentifierToken))), false
}

func binaryNode(k syntax.Kind, left *syntax.Node, op *syntax.Token, right *syntax.Node) *syntax.Node {
	return syntax.Build(k, syntax.NodeSlot(left), syntax.TokenSlot(op), syntax.NodeSlot(right))
}

// ===== неактивные области =====

// scanDisabledText поглощает строки неактивной ветви до строки с
// условной директивой (#if, #elif, #else, #endif) или до EOF.
func (lx *Lexer) scanDisabledText() (syntax.Trivia, bool) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.atConditionalDirective() {
			break
		}
		lx.cursor.Off = lx.cursor.LineEnd()
		lx.scanNewlineInto(nil)
	}
	if lx.cursor.Off == uint32(start) {
		return syntax.Trivia{}, false
	}
	return syntax.Trivia{Kind: syntax.DisabledTextTrivia, Text: lx.cursor.TextFrom(start)}, true
}

func (lx *Lexer) atConditionalDirective() bool {
	var i uint32
	for isWhitespace(lx.cursor.PeekAt(i)) {
		i++
	}
	if lx.cursor.PeekAt(i) != '#' {
		return false
	}
	i++
	for isWhitespace(lx.cursor.PeekAt(i)) {
		i++
	}
	j := i
	for isIdentContinueByte(lx.cursor.PeekAt(j)) {
		j++
	}
	switch string(lx.file.Content[lx.cursor.Off+i : lx.cursor.Off+j]) {
	case "if", "elif", "else", "endif":
		return true
	}
	return false
}
