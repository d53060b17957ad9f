package syntax

// reserved keywords recognised by the lexer in ordinary code
var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := BoolKeyword; k <= DefaultKeyword; k++ {
		m[k.Text()] = k
	}
	return m
}()

var contextualKeywords = map[string]Kind{
	"get": GetKeyword,
	"set": SetKeyword,
}

// directive keywords, valid right after '#'
var directiveKeywords = map[string]Kind{
	"if":          IfKeyword,
	"elif":        ElifKeyword,
	"else":        ElseKeyword,
	"endif":       EndIfKeyword,
	"region":      RegionKeyword,
	"endregion":   EndRegionKeyword,
	"define":      DefineKeyword,
	"undef":       UndefKeyword,
	"line":        LineKeyword,
	"pragma":      PragmaKeyword,
	"warning":     WarningKeyword,
	"error":       ErrorKeyword,
	"disable":     DisableKeyword,
	"restore":     RestoreKeyword,
	"hidden":      HiddenKeyword,
	"nullable":    NullableKeyword,
	"enable":      EnableKeyword,
	"warnings":    WarningsKeyword,
	"annotations": AnnotationsKeyword,
	"default":     DefaultKeyword,
	"true":        TrueKeyword,
	"false":       FalseKeyword,
}

// LookupKeyword resolves a reserved keyword spelling.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// LookupContextualKeyword resolves get/set.
func LookupContextualKeyword(s string) (Kind, bool) {
	k, ok := contextualKeywords[s]
	return k, ok
}

// LookupDirectiveKeyword resolves a word used inside a preprocessor directive.
func LookupDirectiveKeyword(s string) (Kind, bool) {
	k, ok := directiveKeywords[s]
	return k, ok
}
