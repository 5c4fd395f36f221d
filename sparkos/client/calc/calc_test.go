package calc

import (
	"testing"
	"time"

	calcengine "sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	calctask "sparkcalc/sparkos/tasks/calc"
)

type statusResult struct {
	st  Status
	err error
}

type statusTask struct {
	calcCap kernel.Capability
	presses []calcengine.Button
	out     chan<- statusResult
}

func (t *statusTask) Run(ctx *kernel.Context) {
	for _, b := range t.presses {
		if err := Press(ctx, t.calcCap, b); err != nil {
			t.out <- statusResult{err: err}
			return
		}
	}
	st, err := GetStatus(ctx, t.calcCap)
	t.out <- statusResult{st: st, err: err}
}

// bootStatus starts a calculator on a fresh kernel with extra endpoints
// allocated first, then returns the status seen by a client task.
func bootStatus(t *testing.T, extraEndpoints int, presses ...calcengine.Button) Status {
	t.Helper()
	k := kernel.New()
	for i := 0; i < extraEndpoints; i++ {
		k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	}
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !calcEP.Valid() {
		t.Fatal("expected valid calc endpoint")
	}

	out := make(chan statusResult, 1)
	k.AddTask(&statusTask{calcCap: calcEP.Restrict(kernel.RightSend), presses: presses, out: out})
	k.AddTask(calctask.New(nil, calcEP.Restrict(kernel.RightRecv), kernel.Capability{}, kernel.Capability{}))

	select {
	case res := <-out:
		if res.err != nil {
			t.Fatalf("GetStatus err = %v", res.err)
		}
		return res.st
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for status")
	}
	return Status{}
}

func TestGetStatusOnSuccessiveKernels(t *testing.T) {
	st := bootStatus(t, 5, calcengine.Button4, calcengine.ButtonAdd)
	if st.Display != "4" || st.Expression != "4 +" {
		t.Fatalf("first kernel status = %+v", st)
	}

	st = bootStatus(t, 0, calcengine.Button9)
	if st.Display != "9" || st.Expression != "" || st.HistoryLen != 0 {
		t.Fatalf("second kernel status = %+v", st)
	}
}

func TestPressRejectsInvalidButton(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	errc := make(chan error, 1)
	k.AddTask(runFunc(func(ctx *kernel.Context) {
		errc <- Press(ctx, ep.Restrict(kernel.RightSend), calcengine.ButtonNone)
	}))
	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("Press(ButtonNone) err = nil")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

type runFunc func(ctx *kernel.Context)

func (f runFunc) Run(ctx *kernel.Context) { f(ctx) }
