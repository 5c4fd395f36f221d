package calc

// Cell is one key of the keypad grid.
type Cell struct {
	Button  Button
	Col     int
	Row     int
	ColSpan int
	RowSpan int
}

const (
	KeypadCols = 4
	KeypadRows = 5
)

// Keypad is the on-screen key layout:
//
//	C  C  ÷  ×
//	7  8  9  −
//	4  5  6  +
//	1  2  3  =
//	0  0  .  =
var Keypad = [...]Cell{
	{Button: ButtonClear, Col: 0, Row: 0, ColSpan: 2, RowSpan: 1},
	{Button: ButtonDivide, Col: 2, Row: 0, ColSpan: 1, RowSpan: 1},
	{Button: ButtonMultiply, Col: 3, Row: 0, ColSpan: 1, RowSpan: 1},

	{Button: Button7, Col: 0, Row: 1, ColSpan: 1, RowSpan: 1},
	{Button: Button8, Col: 1, Row: 1, ColSpan: 1, RowSpan: 1},
	{Button: Button9, Col: 2, Row: 1, ColSpan: 1, RowSpan: 1},
	{Button: ButtonSubtract, Col: 3, Row: 1, ColSpan: 1, RowSpan: 1},

	{Button: Button4, Col: 0, Row: 2, ColSpan: 1, RowSpan: 1},
	{Button: Button5, Col: 1, Row: 2, ColSpan: 1, RowSpan: 1},
	{Button: Button6, Col: 2, Row: 2, ColSpan: 1, RowSpan: 1},
	{Button: ButtonAdd, Col: 3, Row: 2, ColSpan: 1, RowSpan: 1},

	{Button: Button1, Col: 0, Row: 3, ColSpan: 1, RowSpan: 1},
	{Button: Button2, Col: 1, Row: 3, ColSpan: 1, RowSpan: 1},
	{Button: Button3, Col: 2, Row: 3, ColSpan: 1, RowSpan: 1},
	{Button: ButtonEquals, Col: 3, Row: 3, ColSpan: 1, RowSpan: 2},

	{Button: Button0, Col: 0, Row: 4, ColSpan: 2, RowSpan: 1},
	{Button: ButtonDecimal, Col: 2, Row: 4, ColSpan: 1, RowSpan: 1},
}

// Contains reports whether the grid position lies inside c.
func (c Cell) Contains(col, row int) bool {
	return col >= c.Col && col < c.Col+c.ColSpan && row >= c.Row && row < c.Row+c.RowSpan
}

// CellAt returns the index of the key covering (col, row), or -1.
func CellAt(col, row int) int {
	for i, c := range Keypad {
		if c.Contains(col, row) {
			return i
		}
	}
	return -1
}

// CellFor returns the index of the key bound to b, or -1.
func CellFor(b Button) int {
	for i, c := range Keypad {
		if c.Button == b {
			return i
		}
	}
	return -1
}

// Move returns the key reached from idx by stepping dc columns and dr rows.
// Steps off the grid keep the focus where it is.
func Move(idx, dc, dr int) int {
	if idx < 0 || idx >= len(Keypad) {
		return CellFor(Button0)
	}
	c := Keypad[idx]

	col, row := c.Col, c.Row
	switch {
	case dc > 0:
		col = c.Col + c.ColSpan
	case dc < 0:
		col = c.Col - 1
	}
	switch {
	case dr > 0:
		row = c.Row + c.RowSpan
	case dr < 0:
		row = c.Row - 1
	}

	if next := CellAt(col, row); next >= 0 {
		return next
	}
	return idx
}
