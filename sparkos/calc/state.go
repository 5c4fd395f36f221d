package calc

import (
	"math"
	"strings"
)

// Op is a binary operation selected on the keypad.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpEquals
)

// Symbol returns the label shown in expressions.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	case OpEquals:
		return "="
	default:
		return ""
	}
}

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpEquals:
		return "equals"
	default:
		return "unknown"
	}
}

func (o Op) binary() bool {
	return o >= OpAdd && o <= OpDivide
}

// Apply evaluates a op b.
//
// A zero divisor yields 0. OpEquals returns b unchanged.
func Apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return b
	}
}

// Entry is one completed calculation.
type Entry struct {
	Expression string
	Result     string
}

// State is the calculator record. The zero value is not ready for use; start from
// NewState.
//
// Every transition has a value receiver and returns the next state, leaving the
// receiver untouched.
type State struct {
	display string

	prev    float64
	hasPrev bool
	op      Op

	waiting bool

	expr    string
	history []Entry
}

// NewState returns the power-on state.
func NewState() State {
	return State{display: "0"}
}

func (s State) Display() string    { return s.display }
func (s State) Expression() string { return s.expr }
func (s State) Waiting() bool      { return s.waiting }

// Operation returns the pending operation, or OpNone.
func (s State) Operation() Op { return s.op }

// PreviousValue returns the pending left operand, if any.
func (s State) PreviousValue() (float64, bool) { return s.prev, s.hasPrev }

// HistoryLen returns the number of completed calculations.
func (s State) HistoryLen() int { return len(s.history) }

// History returns a copy of the history, oldest first.
func (s State) History() []Entry {
	if len(s.history) == 0 {
		return nil
	}
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryNewestFirst returns a copy of the history in presentation order.
func (s State) HistoryNewestFirst() []Entry {
	n := len(s.history)
	if n == 0 {
		return nil
	}
	out := make([]Entry, n)
	for i, e := range s.history {
		out[n-1-i] = e
	}
	return out
}

// InputDigit enters one decimal digit. Bytes outside '0'..'9' are ignored.
func (s State) InputDigit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	switch {
	case s.waiting:
		s.display = string(d)
		s.waiting = false
	case s.display == "0":
		s.display = string(d)
	default:
		s.display += string(d)
	}
	return s
}

// InputDecimal starts the fractional part. A second point in the same entry is ignored.
func (s State) InputDecimal() State {
	switch {
	case s.waiting:
		s.display = "0."
		s.waiting = false
	case !strings.Contains(s.display, "."):
		s.display += "."
	}
	return s
}

// Clear resets entry and pending operation. History survives.
func (s State) Clear() State {
	return State{display: "0", history: s.history}
}

// ClearHistory drops every history entry and nothing else.
func (s State) ClearHistory() State {
	s.history = nil
	return s
}

// PerformOperation selects the next operator, folding any pending operation first.
//
// There is no precedence: 2 + 3 × 4 evaluates as (2 + 3) × 4.
func (s State) PerformOperation(next Op) State {
	if !next.binary() {
		return s
	}

	v := ParseNumber(s.display)
	switch {
	case !s.hasPrev:
		s.prev = v
		s.hasPrev = true
		s.expr = FormatNumber(v) + " " + next.Symbol()
	case s.op != OpNone:
		cur := s.prev
		if math.IsNaN(cur) {
			cur = 0
		}
		n := Apply(s.op, cur, v)
		s.display = FormatNumber(n)
		s.prev = n
		s.expr = FormatNumber(n) + " " + next.Symbol()
	default:
		// Only reachable when prev was set without an operator.
		s.expr = s.display + " " + next.Symbol()
	}

	s.waiting = true
	s.op = next
	return s
}

// HandleEquals resolves the pending operation and records it in the history.
// Without a pending operation it does nothing.
func (s State) HandleEquals() State {
	if !s.hasPrev || s.op == OpNone {
		return s
	}

	v := ParseNumber(s.display)
	r := Apply(s.op, s.prev, v)
	result := FormatNumber(r)

	e := Entry{
		Expression: FormatNumber(s.prev) + " " + s.op.Symbol() + " " + FormatNumber(v),
		Result:     result,
	}
	hist := make([]Entry, len(s.history), len(s.history)+1)
	copy(hist, s.history)
	s.history = append(hist, e)

	s.display = result
	s.prev = 0
	s.hasPrev = false
	s.op = OpNone
	s.waiting = true
	s.expr = ""
	return s
}
