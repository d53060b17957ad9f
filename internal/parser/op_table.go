package parser

import "quoter/internal/syntax"

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precCoalesce       = 1  // ?? (правоассоциативный)
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == !=
	precComparison     = 8  // < <= > >=
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный); -1 — не бинарный оператор.
// Присваивание и ?: разбираются отдельно.
func getBinaryOperatorPrec(kind syntax.Kind) (int, bool) {
	switch kind {
	case syntax.QuestionQuestionToken:
		return precCoalesce, true

	// Логические операторы
	case syntax.BarBarToken:
		return precLogicalOr, false
	case syntax.AmpersandAmpersandToken:
		return precLogicalAnd, false

	// Битовые операторы
	case syntax.BarToken:
		return precBitwiseOr, false
	case syntax.CaretToken:
		return precBitwiseXor, false
	case syntax.AmpersandToken:
		return precBitwiseAnd, false

	// Операторы равенства и сравнения
	case syntax.EqualsEqualsToken, syntax.ExclamationEqualsToken:
		return precEquality, false
	case syntax.LessThanToken, syntax.LessThanEqualsToken,
		syntax.GreaterThanToken, syntax.GreaterThanEqualsToken:
		return precComparison, false

	// Арифметические операторы
	case syntax.PlusToken, syntax.MinusToken:
		return precAdditive, false
	case syntax.AsteriskToken, syntax.SlashToken, syntax.PercentToken:
		return precMultiplicative, false

	default:
		return -1, false
	}
}
