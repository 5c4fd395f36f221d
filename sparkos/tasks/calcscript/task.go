package calcscript

import (
	"fmt"
	"unicode"

	calcengine "sparkcalc/sparkos/calc"
	calcclient "sparkcalc/sparkos/client/calc"
	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
)

// Task types a button script into the calculator and logs what it ends up
// showing. It exits when the script is done.
type Task struct {
	calcCap kernel.Capability
	logCap  kernel.Capability
	timeCap kernel.Capability

	script string
}

func New(calcCap, logCap, timeCap kernel.Capability, script string) *Task {
	return &Task{calcCap: calcCap, logCap: logCap, timeCap: timeCap, script: script}
}

func (t *Task) Run(ctx *kernel.Context) {
	for _, r := range t.script {
		if unicode.IsSpace(r) {
			continue
		}
		b, ok := calcengine.ButtonForRune(r)
		if !ok {
			t.log(ctx, fmt.Sprintf("calc script: skip %q", r))
			continue
		}
		if err := calcclient.Press(ctx, t.calcCap, b); err != nil {
			t.log(ctx, "calc script: "+err.Error())
			return
		}
	}

	st, err := calcclient.GetStatus(ctx, t.calcCap)
	if err != nil {
		t.log(ctx, "calc script: "+err.Error())
		return
	}
	t.log(ctx, fmt.Sprintf("calc script: display=%s expression=%s history=%d", st.Display, st.Expression, st.HistoryLen))
}

func (t *Task) log(ctx *kernel.Context, line string) {
	if t.timeCap.Valid() {
		if err := logclient.LogRetry(ctx, t.timeCap, t.logCap, line); err == nil {
			return
		}
	}
	_ = logclient.Log(ctx, t.logCap, line)
}
