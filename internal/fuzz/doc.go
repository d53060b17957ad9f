// Package fuzztests houses Go fuzz harnesses that exercise the quoter
// pipeline (source -> lexer -> parser -> quote -> eval). Its goal is to smoke
// test robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: загружать байты в FileSet, прогонять их через лексер и парсер,
// а разобранные без ошибок деревья ещё и через сериализацию и обратное
// вычисление.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/quote, internal/driver, internal/testkit.

package fuzztests
