package calc

import (
	"math"
	"testing"
)

func press(t *testing.T, s State, keys string) State {
	t.Helper()
	for _, r := range keys {
		b, ok := ButtonForRune(r)
		if !ok {
			t.Fatalf("ButtonForRune(%q) ok=false", r)
		}
		s = s.Press(b)
	}
	return s
}

func lastEntry(t *testing.T, s State) Entry {
	t.Helper()
	h := s.History()
	if len(h) == 0 {
		t.Fatal("history is empty")
	}
	return h[len(h)-1]
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if got := s.Display(); got != "0" {
		t.Fatalf("Display() = %q, want %q", got, "0")
	}
	if _, ok := s.PreviousValue(); ok {
		t.Fatal("PreviousValue() ok = true, want false")
	}
	if s.Operation() != OpNone || s.Waiting() || s.Expression() != "" || s.HistoryLen() != 0 {
		t.Fatalf("unexpected default state: %+v", s)
	}
}

func TestDigitsConcatenate(t *testing.T) {
	tcs := []struct {
		keys string
		want string
	}{
		{keys: "1230", want: "1230"},
		{keys: "5", want: "5"},
		{keys: "007", want: "7"},
		{keys: "0", want: "0"},
		{keys: "9876543210123", want: "9876543210123"},
	}
	for _, tc := range tcs {
		s := press(t, NewState(), tc.keys)
		if got := s.Display(); got != tc.want {
			t.Fatalf("press(%q) Display() = %q, want %q", tc.keys, got, tc.want)
		}
	}
}

func TestInputDigitIgnoresNonDigits(t *testing.T) {
	s := NewState().InputDigit('4').InputDigit('a').InputDigit('.')
	if got := s.Display(); got != "4" {
		t.Fatalf("Display() = %q, want %q", got, "4")
	}
}

func TestInputDecimalIdempotent(t *testing.T) {
	s := press(t, NewState(), "1.")
	again := s.InputDecimal()
	if again.Display() != s.Display() {
		t.Fatalf("second decimal: Display() = %q, want %q", again.Display(), s.Display())
	}
	s = press(t, again, "5.")
	if got := s.Display(); got != "1.5" {
		t.Fatalf("Display() = %q, want %q", got, "1.5")
	}
}

func TestInputDecimalFromZero(t *testing.T) {
	s := press(t, NewState(), ".5")
	if got := s.Display(); got != "0.5" {
		t.Fatalf("Display() = %q, want %q", got, "0.5")
	}
}

func TestInputDecimalAfterOperatorStartsFresh(t *testing.T) {
	s := press(t, NewState(), "5+.")
	if got := s.Display(); got != "0." {
		t.Fatalf("Display() = %q, want %q", got, "0.")
	}
	if s.Waiting() {
		t.Fatal("Waiting() = true after decimal, want false")
	}
	s = press(t, s, "5=")
	if e := lastEntry(t, s); e.Expression != "5 + 0.5" || e.Result != "5.5" {
		t.Fatalf("entry = %+v, want {5 + 0.5 5.5}", e)
	}
}

func TestBasicMultiply(t *testing.T) {
	s := press(t, NewState(), "7*6=")
	if got := s.Display(); got != "42" {
		t.Fatalf("Display() = %q, want %q", got, "42")
	}
	if e := lastEntry(t, s); e.Expression != "7 × 6" || e.Result != "42" {
		t.Fatalf("entry = %+v, want {7 × 6 42}", e)
	}
	if s.Expression() != "" || s.Operation() != OpNone || !s.Waiting() {
		t.Fatalf("post-equals state = %+v", s)
	}
	if _, ok := s.PreviousValue(); ok {
		t.Fatal("PreviousValue() ok = true after equals")
	}
}

func TestDecimalSum(t *testing.T) {
	s := press(t, NewState(), "1.5+2.5=")
	if got := s.Display(); got != "4" {
		t.Fatalf("Display() = %q, want %q", got, "4")
	}
	if e := lastEntry(t, s); e.Expression != "1.5 + 2.5" || e.Result != "4" {
		t.Fatalf("entry = %+v, want {1.5 + 2.5 4}", e)
	}
}

func TestSubtractSymbol(t *testing.T) {
	s := press(t, NewState(), "3-5=")
	if e := lastEntry(t, s); e.Expression != "3 − 5" || e.Result != "-2" {
		t.Fatalf("entry = %+v, want {3 − 5 -2}", e)
	}
}

func TestChainedOperatorsFoldLeft(t *testing.T) {
	s := press(t, NewState(), "5+3+")
	if got := s.Display(); got != "8" {
		t.Fatalf("after 5+3+: Display() = %q, want %q", got, "8")
	}
	if got := s.Expression(); got != "8 +" {
		t.Fatalf("after 5+3+: Expression() = %q, want %q", got, "8 +")
	}

	s = press(t, s, "2=")
	if got := s.Display(); got != "10" {
		t.Fatalf("Display() = %q, want %q", got, "10")
	}
	if e := lastEntry(t, s); e.Expression != "8 + 2" || e.Result != "10" {
		t.Fatalf("entry = %+v, want {8 + 2 10}", e)
	}
	if s.HistoryLen() != 1 {
		t.Fatalf("HistoryLen() = %d, want 1", s.HistoryLen())
	}
}

func TestNoPrecedence(t *testing.T) {
	s := press(t, NewState(), "2+3*4=")
	if got := s.Display(); got != "20" {
		t.Fatalf("Display() = %q, want %q", got, "20")
	}
}

func TestOperatorPressedTwiceFoldsCurrentEntry(t *testing.T) {
	// The second operator folds prev with the unchanged display: 5 + 5.
	s := press(t, NewState(), "5++")
	if got := s.Display(); got != "10" {
		t.Fatalf("Display() = %q, want %q", got, "10")
	}
	if got := s.Expression(); got != "10 +" {
		t.Fatalf("Expression() = %q, want %q", got, "10 +")
	}
}

func TestDivideByZeroYieldsZero(t *testing.T) {
	s := press(t, NewState(), "5/0=")
	if got := s.Display(); got != "0" {
		t.Fatalf("Display() = %q, want %q", got, "0")
	}
	if e := lastEntry(t, s); e.Expression != "5 ÷ 0" || e.Result != "0" {
		t.Fatalf("entry = %+v, want {5 ÷ 0 0}", e)
	}
}

func TestFloatArtifactsPropagate(t *testing.T) {
	s := press(t, NewState(), "0.1+0.2=")
	const want = "0.30000000000000004"
	if got := s.Display(); got != want {
		t.Fatalf("Display() = %q, want %q", got, want)
	}
	if e := lastEntry(t, s); e.Result != want {
		t.Fatalf("entry result = %q, want %q", e.Result, want)
	}
}

func TestEqualsWithoutPendingOperationIsNoop(t *testing.T) {
	s := press(t, NewState(), "5")
	after := s.HandleEquals()
	if after.Display() != "5" || after.HistoryLen() != 0 || after.Waiting() {
		t.Fatalf("HandleEquals() changed state: %+v", after)
	}

	s = press(t, NewState(), "7*6==")
	if s.HistoryLen() != 1 {
		t.Fatalf("HistoryLen() = %d after double equals, want 1", s.HistoryLen())
	}
}

func TestDigitAfterEqualsStartsFresh(t *testing.T) {
	s := press(t, NewState(), "7*6=3")
	if got := s.Display(); got != "3" {
		t.Fatalf("Display() = %q, want %q", got, "3")
	}
}

func TestOperatorAfterEqualsReusesResult(t *testing.T) {
	s := press(t, NewState(), "7*6=+1=")
	if e := lastEntry(t, s); e.Expression != "42 + 1" || e.Result != "43" {
		t.Fatalf("entry = %+v, want {42 + 1 43}", e)
	}
}

func TestOperatorNormalizesOperandInExpression(t *testing.T) {
	s := press(t, NewState(), "1.50+")
	if got := s.Expression(); got != "1.5 +" {
		t.Fatalf("Expression() = %q, want %q", got, "1.5 +")
	}
	s = press(t, NewState(), "0.+")
	if got := s.Expression(); got != "0 +" {
		t.Fatalf("Expression() = %q, want %q", got, "0 +")
	}
}

func TestPerformOperationIgnoresNonBinaryOps(t *testing.T) {
	s := press(t, NewState(), "9")
	for _, op := range []Op{OpNone, OpEquals, Op(42)} {
		if got := s.PerformOperation(op); got.Operation() != OpNone || got.Waiting() || got.Expression() != "" {
			t.Fatalf("PerformOperation(%s) changed state: %+v", op, got)
		}
	}
}

func TestPerformOperationWithPrevButNoOperation(t *testing.T) {
	s := State{display: "12", prev: 3, hasPrev: true}
	s = s.PerformOperation(OpAdd)
	if got := s.Expression(); got != "12 +" {
		t.Fatalf("Expression() = %q, want %q", got, "12 +")
	}
	if prev, _ := s.PreviousValue(); prev != 3 {
		t.Fatalf("PreviousValue() = %v, want 3", prev)
	}
	if s.Display() != "12" || s.Operation() != OpAdd || !s.Waiting() {
		t.Fatalf("unexpected state: %+v", s)
	}
}

func TestChainedFoldTreatsNaNOperandAsZero(t *testing.T) {
	s := State{display: "4", prev: math.NaN(), hasPrev: true, op: OpAdd}
	s = s.PerformOperation(OpMultiply)
	if got := s.Display(); got != "4" {
		t.Fatalf("Display() = %q, want %q", got, "4")
	}
	if got := s.Expression(); got != "4 ×" {
		t.Fatalf("Expression() = %q, want %q", got, "4 ×")
	}
}

func TestClearKeepsHistory(t *testing.T) {
	s := press(t, NewState(), "7*6=9+")
	before := s.History()

	s = s.Clear()
	if s.Display() != "0" || s.Expression() != "" || s.Operation() != OpNone || s.Waiting() {
		t.Fatalf("Clear() state = %+v", s)
	}
	if _, ok := s.PreviousValue(); ok {
		t.Fatal("PreviousValue() ok = true after Clear")
	}
	after := s.History()
	if len(after) != len(before) {
		t.Fatalf("HistoryLen() = %d after Clear, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("history[%d] = %+v, want %+v", i, after[i], before[i])
		}
	}
}

func TestClearHistoryTouchesNothingElse(t *testing.T) {
	s := press(t, NewState(), "1+1=2+2=*")
	s = s.ClearHistory()
	if s.HistoryLen() != 0 {
		t.Fatalf("HistoryLen() = %d, want 0", s.HistoryLen())
	}
	if s.Display() != "4" || s.Expression() != "4 ×" || s.Operation() != OpMultiply || !s.Waiting() {
		t.Fatalf("ClearHistory() changed other fields: %+v", s)
	}

	s = press(t, s, "2=")
	h := s.History()
	if len(h) != 1 || h[0].Expression != "4 × 2" || h[0].Result != "8" {
		t.Fatalf("history = %+v, want [{4 × 2 8}]", h)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := press(t, NewState(), "1+1=2+2=3+3=")
	h := s.HistoryNewestFirst()
	want := []string{"6", "4", "2"}
	if len(h) != len(want) {
		t.Fatalf("len = %d, want %d", len(h), len(want))
	}
	for i := range want {
		if h[i].Result != want[i] {
			t.Fatalf("HistoryNewestFirst()[%d].Result = %q, want %q", i, h[i].Result, want[i])
		}
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := press(t, NewState(), "1+1=")
	b := press(t, base, "2+2=")
	c := press(t, base, "3+3=")

	if base.HistoryLen() != 1 || base.Display() != "2" {
		t.Fatalf("base mutated: %+v", base)
	}
	if got := b.History()[1].Expression; got != "2 + 2" {
		t.Fatalf("b history[1] = %q, want %q", got, "2 + 2")
	}
	if got := c.History()[1].Expression; got != "3 + 3" {
		t.Fatalf("c history[1] = %q, want %q", got, "3 + 3")
	}

	h := b.History()
	h[0].Result = "tampered"
	if b.History()[0].Result != "2" {
		t.Fatal("History() returned an alias of internal storage")
	}
}

func TestApply(t *testing.T) {
	tcs := []struct {
		op   Op
		a, b float64
		want float64
	}{
		{op: OpAdd, a: 2, b: 3, want: 5},
		{op: OpSubtract, a: 2, b: 3, want: -1},
		{op: OpMultiply, a: 2, b: 3, want: 6},
		{op: OpDivide, a: 3, b: 2, want: 1.5},
		{op: OpDivide, a: 3, b: 0, want: 0},
		{op: OpEquals, a: 3, b: 7, want: 7},
	}
	for _, tc := range tcs {
		if got := Apply(tc.op, tc.a, tc.b); got != tc.want {
			t.Fatalf("Apply(%s, %v, %v) = %v, want %v", tc.op, tc.a, tc.b, got, tc.want)
		}
	}
}
