package calc

import (
	calcengine "sparkcalc/sparkos/calc"
	termclient "sparkcalc/sparkos/client/term"
	"sparkcalc/sparkos/kernel"
)

func (t *Task) tapeStart(ctx *kernel.Context) {
	if err := termclient.ClearAll(ctx, t.termCap); err != nil {
		t.log(ctx, "calc tape: "+err.Error())
		return
	}
	t.tapeWrite(ctx, "\x1b[1mSpark Calc tape\x1b[0m\n\n")
}

func (t *Task) tapeEntry(ctx *kernel.Context, e calcengine.Entry) {
	t.tapeWrite(ctx, asciiText(e.Expression)+" =\n\x1b[1m"+asciiText(e.Result)+"\x1b[0m\n\n")
}

func (t *Task) tapeClearHistory(ctx *kernel.Context) {
	t.tapeWrite(ctx, "\x1b[38;5;245m---- cleared ----\x1b[0m\n\n")
}

func (t *Task) tapeWrite(ctx *kernel.Context, s string) {
	if !t.tape {
		return
	}
	if err := termclient.WriteAll(ctx, t.termCap, []byte(s)); err != nil {
		t.log(ctx, "calc tape: "+err.Error())
	}
}
