package calc

// Engine owns one State and applies transitions to it in call order.
//
// It is not safe for concurrent use.
type Engine struct {
	s State
}

func New() *Engine {
	return &Engine{s: NewState()}
}

// Snapshot returns the current state. It shares nothing mutable with the engine.
func (e *Engine) Snapshot() State { return e.s }

func (e *Engine) Display() string             { return e.s.Display() }
func (e *Engine) Expression() string          { return e.s.Expression() }
func (e *Engine) History() []Entry            { return e.s.History() }
func (e *Engine) HistoryNewestFirst() []Entry { return e.s.HistoryNewestFirst() }
func (e *Engine) HistoryLen() int             { return e.s.HistoryLen() }

func (e *Engine) InputDigit(d byte)      { e.s = e.s.InputDigit(d) }
func (e *Engine) InputDecimal()          { e.s = e.s.InputDecimal() }
func (e *Engine) Clear()                 { e.s = e.s.Clear() }
func (e *Engine) ClearHistory()          { e.s = e.s.ClearHistory() }
func (e *Engine) PerformOperation(op Op) { e.s = e.s.PerformOperation(op) }
func (e *Engine) HandleEquals()          { e.s = e.s.HandleEquals() }

// Press applies b and returns the history entry it completed, if any.
func (e *Engine) Press(b Button) (Entry, bool) {
	before := e.s.HistoryLen()
	e.s = e.s.Press(b)
	if n := e.s.HistoryLen(); n > before {
		return e.s.history[n-1], true
	}
	return Entry{}, false
}
