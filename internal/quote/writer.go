package quote

import "strings"

// value is a sub-expression waiting to be rendered. Atomic values contain
// no call: `default`, `true`, `SyntaxKind.X`, `Space`, string and numeric
// literals. Calls keep their arguments as values and are laid out only once,
// when the whole tree is written.
type value struct {
	text   string
	atomic bool
	call   *callExpr
}

// callExpr is callee(args...), or recv followed by `.Method(arg)` on the
// next line when recv is set.
type callExpr struct {
	recv   *value
	callee string
	args   []argument
	inline bool
}

func atom(text string) value { return value{text: text, atomic: true} }

// multiline reports whether the rendering spans several lines. Atoms never
// contain a line break: strings with line breaks are always escaped.
func (v value) multiline() bool {
	if v.call == nil {
		return false
	}
	return v.call.recv != nil || !v.call.inline
}

var valueDefault = atom("default")

// argument is one entry of an argument list; name is set in verbose mode.
type argument struct {
	name string
	val  value
}

// indentImbalance is the panic value of a PopIndent without PushIndent.
type indentImbalance struct{}

// writer accumulates the output text. Every line after a line break is
// indented to the current level.
type writer struct {
	buf         strings.Builder
	unit        string
	indentLevel int
	atLineStart bool
}

func newWriter(unit string) *writer {
	return &writer{unit: unit}
}

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel {
		w.buf.WriteString(w.unit)
	}
	w.atLineStart = false
}

// Append writes s, indenting each line that follows a line break in s.
func (w *writer) Append(s string) {
	for s != "" {
		w.writeIndent()
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			w.buf.WriteString(s)
			return
		}
		w.buf.WriteString(s[:i+1])
		w.atLineStart = true
		s = s[i+1:]
	}
}

// AppendLine writes s and ends the line.
func (w *writer) AppendLine(s string) {
	w.Append(s)
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// PushIndent increases the indentation level.
func (w *writer) PushIndent() {
	w.indentLevel++
}

// PopIndent decreases the indentation level. An unmatched pop is a defect
// in the serializer and panics; SerializeNode turns the panic into
// ErrIndentationImbalance.
func (w *writer) PopIndent() {
	if w.indentLevel == 0 {
		panic(indentImbalance{})
	}
	w.indentLevel--
}

// WriteArgument writes `name: value` (or just value) followed by a comma,
// or by the closing parenthesis when closeArgumentList is set.
func (w *writer) WriteArgument(name string, v value, closeArgumentList bool) {
	w.run(step{op: opArgument, arg: &argument{name: name, val: v}, close: closeArgumentList})
}

// WriteValue renders v at the current position.
func (w *writer) WriteValue(v value) {
	w.run(step{op: opValue, val: &v})
}

func (w *writer) String() string { return w.buf.String() }

type stepOp uint8

const (
	opText stepOp = iota
	opValue
	opArgument
	opLine
	opPush
	opPop
)

type step struct {
	op    stepOp
	text  string
	val   *value
	arg   *argument
	close bool
}

// run раскрывает значения через явный стек: глубина вложенности вызовов
// не ограничена стеком горутины, каждый вызов раскрывается ровно один раз.
func (w *writer) run(first step) {
	stack := []step{first}
	var buf []step
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch st.op {
		case opText:
			w.Append(st.text)
		case opLine:
			w.AppendLine("")
		case opPush:
			w.PushIndent()
		case opPop:
			w.PopIndent()
		case opArgument:
			buf = buf[:0]
			if st.arg.name != "" {
				buf = append(buf, step{text: st.arg.name + ": "})
			}
			buf = append(buf, step{op: opValue, val: &st.arg.val})
			if st.close {
				buf = append(buf, step{text: ")"})
			} else {
				buf = append(buf, step{text: ","})
			}
			stack = pushReversed(stack, buf)
		case opValue:
			if st.val.call == nil {
				w.Append(st.val.text)
				continue
			}
			buf = expandCall(buf[:0], st.val.call)
			stack = pushReversed(stack, buf)
		}
	}
}

// expandCall lists the steps of one call in output order.
func expandCall(out []step, c *callExpr) []step {
	if c.recv != nil {
		out = append(out, step{op: opValue, val: c.recv}, step{op: opLine})
	}
	out = append(out, step{text: c.callee + "("})
	if len(c.args) == 0 {
		return append(out, step{text: ")"})
	}
	if c.inline {
		for i := range c.args {
			if i > 0 {
				out = append(out, step{text: " "})
			}
			out = append(out, step{op: opArgument, arg: &c.args[i], close: i == len(c.args)-1})
		}
		return out
	}
	out = append(out, step{op: opPush})
	for i := range c.args {
		out = append(out, step{op: opLine}, step{op: opArgument, arg: &c.args[i], close: i == len(c.args)-1})
	}
	return append(out, step{op: opPop})
}

func pushReversed(stack, steps []step) []step {
	for i := len(steps) - 1; i >= 0; i-- {
		stack = append(stack, steps[i])
	}
	return stack
}

// render writes v into a fresh writer.
func (s *serializer) render(v value) string {
	w := newWriter(s.unit)
	w.WriteValue(v)
	return w.String()
}

// call builds callee(args...). The call stays on one line when every
// argument is single-line and either there is one argument or all of them
// are atomic; otherwise each argument gets its own line, one level deeper,
// and the closing parenthesis follows the last argument.
func (s *serializer) call(callee string, args ...argument) value {
	inline := true
	for _, a := range args {
		if a.val.multiline() || (len(args) > 1 && !a.val.atomic) {
			inline = false
			break
		}
	}
	return value{call: &callExpr{callee: callee, args: args, inline: inline}}
}

// positional wraps values as unnamed arguments.
func positional(vals ...value) []argument {
	args := make([]argument, len(vals))
	for i, v := range vals {
		args[i] = argument{val: v}
	}
	return args
}

// chainWith appends `.Method(v)` on a new line at the level of the receiver.
func (s *serializer) chainWith(recv value, method string, v value) value {
	with := s.call("."+method, argument{val: v})
	with.call.recv = &recv
	return with
}
