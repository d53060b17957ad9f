// Package format builds the canonically formatted copy of a tree used by the
// defaultFormatting quote mode.
//
// Назначение: заменить пробелы и переводы строк каноническими: один пробел
// между словами и вокруг операторов, перевод строки после `;`, `{`, `}` и
// атрибутов, фигурные скобки на отдельной строке, отступ по глубине скобок.
// Комментарии, doc-комментарии, директивы и неактивные ветви сохраняются:
// висящий комментарий остаётся за токеном, ведущий получает свою строку,
// директивы и disabled text стоят с нулевой колонки как есть.
//
// Не делает: переноса длинных строк, выравнивания, сохранения пустых строк,
// IO. The input tree is never modified; Normalize works on a Clone.
//
// Зависимости: internal/syntax.
package format
