package app

import (
	"strings"
	"testing"

	"sparkcalc/sparkos/kernel"
)

func TestTakeRunes(t *testing.T) {
	tcs := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{s: "abcdef", n: 4, head: "abcd", tail: "ef"},
		{s: "abc", n: 4, head: "abc", tail: ""},
		{s: "×÷−+", n: 2, head: "×÷", tail: "−+"},
		{s: "abc", n: 0, head: "", tail: "abc"},
	}
	for _, tc := range tcs {
		head, tail := takeRunes(tc.s, tc.n)
		if head != tc.head || tail != tc.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q; want %q, %q", tc.s, tc.n, head, tail, tc.head, tc.tail)
		}
	}
}

func TestPanicLines(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 3, Value: "boom", Stack: []byte("a\n\nb\n")})
	got := strings.Join(lines, "|")
	if got != "Spark Calc panic:|task: 3|panic: boom|stack:|a|b" {
		t.Fatalf("lines = %q", got)
	}

	lines = panicLines(kernel.PanicInfo{TaskID: 1, Value: 7})
	if lines[len(lines)-1] != "stack: unavailable" {
		t.Fatalf("lines = %q", lines)
	}
}
