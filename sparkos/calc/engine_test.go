package calc

import "testing"

func TestEnginePressReportsCompletedEntry(t *testing.T) {
	e := New()
	for _, b := range []Button{Button7, ButtonMultiply, Button6} {
		if _, ok := e.Press(b); ok {
			t.Fatalf("Press(%s) completed an entry early", b)
		}
	}

	entry, ok := e.Press(ButtonEquals)
	if !ok {
		t.Fatal("Press(=) ok = false, want true")
	}
	if entry.Expression != "7 × 6" || entry.Result != "42" {
		t.Fatalf("entry = %+v, want {7 × 6 42}", entry)
	}
	if e.Display() != "42" || e.HistoryLen() != 1 {
		t.Fatalf("Display()=%q HistoryLen()=%d", e.Display(), e.HistoryLen())
	}

	if _, ok := e.Press(ButtonEquals); ok {
		t.Fatal("second Press(=) completed an entry")
	}
}

func TestEngineClearHistoryThenEquals(t *testing.T) {
	e := New()
	for _, r := range "1+1=2+2=" {
		b, _ := ButtonForRune(r)
		e.Press(b)
	}
	e.PerformOperation(OpAdd)
	e.ClearHistory()
	e.InputDigit('1')

	entry, ok := e.Press(ButtonEquals)
	if !ok || entry.Expression != "4 + 1" || entry.Result != "5" {
		t.Fatalf("Press(=) = %+v, %v; want {4 + 1 5}, true", entry, ok)
	}
	if h := e.HistoryNewestFirst(); len(h) != 1 {
		t.Fatalf("HistoryNewestFirst() len = %d, want 1", len(h))
	}
}

func TestEngineDirectOperations(t *testing.T) {
	e := New()
	e.InputDigit('9')
	e.InputDecimal()
	e.InputDigit('5')
	e.PerformOperation(OpSubtract)
	if got := e.Expression(); got != "9.5 −" {
		t.Fatalf("Expression() = %q, want %q", got, "9.5 −")
	}
	e.InputDigit('2')
	e.HandleEquals()
	if got := e.Display(); got != "7.5" {
		t.Fatalf("Display() = %q, want %q", got, "7.5")
	}

	snap := e.Snapshot()
	e.Clear()
	if snap.Display() != "7.5" {
		t.Fatalf("snapshot changed after Clear: %q", snap.Display())
	}
	if e.Display() != "0" || len(e.History()) != 1 {
		t.Fatalf("after Clear: Display()=%q history=%d", e.Display(), len(e.History()))
	}
}
