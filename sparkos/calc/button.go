package calc

// Button is one key of the calculator keypad.
type Button uint8

const (
	ButtonNone Button = iota
	Button0
	Button1
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8
	Button9
	ButtonDecimal
	ButtonClear
	ButtonAdd
	ButtonSubtract
	ButtonMultiply
	ButtonDivide
	ButtonEquals
	ButtonClearHistory

	buttonCount
)

// Valid reports whether b names a real key.
func (b Button) Valid() bool {
	return b > ButtonNone && b < buttonCount
}

// Digit returns the ASCII digit for Button0..Button9.
func (b Button) Digit() (byte, bool) {
	if b < Button0 || b > Button9 {
		return 0, false
	}
	return '0' + byte(b-Button0), true
}

// Op returns the operation bound to an operator key.
func (b Button) Op() Op {
	switch b {
	case ButtonAdd:
		return OpAdd
	case ButtonSubtract:
		return OpSubtract
	case ButtonMultiply:
		return OpMultiply
	case ButtonDivide:
		return OpDivide
	case ButtonEquals:
		return OpEquals
	default:
		return OpNone
	}
}

// Label returns the keycap text.
func (b Button) Label() string {
	if d, ok := b.Digit(); ok {
		return string(d)
	}
	switch b {
	case ButtonDecimal:
		return "."
	case ButtonClear:
		return "C"
	case ButtonClearHistory:
		return "CH"
	case ButtonAdd, ButtonSubtract, ButtonMultiply, ButtonDivide, ButtonEquals:
		return b.Op().Symbol()
	default:
		return ""
	}
}

func (b Button) String() string {
	if !b.Valid() {
		return "none"
	}
	return b.Label()
}

// Press applies the operation bound to b. Invalid buttons leave s unchanged.
func (s State) Press(b Button) State {
	if d, ok := b.Digit(); ok {
		return s.InputDigit(d)
	}
	switch b {
	case ButtonDecimal:
		return s.InputDecimal()
	case ButtonClear:
		return s.Clear()
	case ButtonClearHistory:
		return s.ClearHistory()
	case ButtonEquals:
		return s.HandleEquals()
	case ButtonAdd, ButtonSubtract, ButtonMultiply, ButtonDivide:
		return s.PerformOperation(b.Op())
	default:
		return s
	}
}

// ButtonForRune maps a typed character to a keypad button.
func ButtonForRune(r rune) (Button, bool) {
	if r >= '0' && r <= '9' {
		return Button0 + Button(r-'0'), true
	}
	switch r {
	case '.':
		return ButtonDecimal, true
	case '+':
		return ButtonAdd, true
	case '-', '−':
		return ButtonSubtract, true
	case '*', 'x', 'X', '×':
		return ButtonMultiply, true
	case '/', '÷':
		return ButtonDivide, true
	case '=':
		return ButtonEquals, true
	case 'c', 'C':
		return ButtonClear, true
	case 'h', 'H':
		return ButtonClearHistory, true
	default:
		return ButtonNone, false
	}
}
