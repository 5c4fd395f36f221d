package calc

import "testing"

func TestKeypadCoversGridOnce(t *testing.T) {
	for row := 0; row < KeypadRows; row++ {
		for col := 0; col < KeypadCols; col++ {
			hits := 0
			for _, c := range Keypad {
				if c.Contains(col, row) {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("grid (%d,%d) covered by %d keys, want 1", col, row, hits)
			}
		}
	}
}

func TestKeypadHasEveryEntryButton(t *testing.T) {
	for b := ButtonNone + 1; b < buttonCount; b++ {
		idx := CellFor(b)
		if b == ButtonClearHistory {
			if idx != -1 {
				t.Fatalf("CellFor(%s) = %d, want -1 (history panel owns it)", b, idx)
			}
			continue
		}
		if idx < 0 {
			t.Fatalf("CellFor(%s) = -1, want a key", b)
		}
	}
}

func TestKeypadMove(t *testing.T) {
	at := func(b Button) int {
		t.Helper()
		idx := CellFor(b)
		if idx < 0 {
			t.Fatalf("CellFor(%s) = -1", b)
		}
		return idx
	}

	tcs := []struct {
		from   Button
		dc, dr int
		want   Button
	}{
		{from: ButtonClear, dc: 1, want: ButtonDivide},
		{from: ButtonDivide, dc: -1, want: ButtonClear},
		{from: Button7, dr: -1, want: ButtonClear},
		{from: Button8, dr: -1, want: ButtonClear},
		{from: ButtonClear, dr: 1, want: Button7},
		{from: Button3, dc: 1, want: ButtonEquals},
		{from: ButtonEquals, dc: -1, want: Button3},
		{from: ButtonEquals, dr: 1, want: ButtonEquals},
		{from: ButtonDecimal, dc: 1, want: ButtonEquals},
		{from: Button0, dc: 1, want: ButtonDecimal},
		{from: Button0, dr: -1, want: Button1},
		{from: Button0, dc: -1, want: Button0},
		{from: ButtonMultiply, dc: 1, want: ButtonMultiply},
		{from: ButtonMultiply, dr: -1, want: ButtonMultiply},
	}
	for _, tc := range tcs {
		got := Move(at(tc.from), tc.dc, tc.dr)
		if Keypad[got].Button != tc.want {
			t.Fatalf("Move(%s, %d, %d) = %s, want %s", tc.from, tc.dc, tc.dr, Keypad[got].Button, tc.want)
		}
	}
}

func TestMoveFromInvalidIndexFocusesZero(t *testing.T) {
	if got := Move(-1, 1, 0); Keypad[got].Button != Button0 {
		t.Fatalf("Move(-1) = %s, want 0", Keypad[got].Button)
	}
}

func TestButtonForRune(t *testing.T) {
	tcs := []struct {
		r    rune
		want Button
	}{
		{r: '0', want: Button0},
		{r: '9', want: Button9},
		{r: '.', want: ButtonDecimal},
		{r: '+', want: ButtonAdd},
		{r: '-', want: ButtonSubtract},
		{r: '−', want: ButtonSubtract},
		{r: '*', want: ButtonMultiply},
		{r: 'x', want: ButtonMultiply},
		{r: '×', want: ButtonMultiply},
		{r: '/', want: ButtonDivide},
		{r: '÷', want: ButtonDivide},
		{r: '=', want: ButtonEquals},
		{r: 'C', want: ButtonClear},
		{r: 'h', want: ButtonClearHistory},
	}
	for _, tc := range tcs {
		got, ok := ButtonForRune(tc.r)
		if !ok || got != tc.want {
			t.Fatalf("ButtonForRune(%q) = %s, %v; want %s", tc.r, got, ok, tc.want)
		}
	}
	if _, ok := ButtonForRune('q'); ok {
		t.Fatal("ButtonForRune('q') ok = true, want false")
	}
}

func TestButtonLabels(t *testing.T) {
	tcs := map[Button]string{
		Button0:            "0",
		Button7:            "7",
		ButtonDecimal:      ".",
		ButtonClear:        "C",
		ButtonSubtract:     "−",
		ButtonMultiply:     "×",
		ButtonDivide:       "÷",
		ButtonEquals:       "=",
		ButtonClearHistory: "CH",
	}
	for b, want := range tcs {
		if got := b.Label(); got != want {
			t.Fatalf("Button(%d).Label() = %q, want %q", b, got, want)
		}
	}
	if ButtonNone.Valid() || buttonCount.Valid() {
		t.Fatal("sentinel buttons report Valid() = true")
	}
}
