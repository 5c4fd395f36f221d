package calcscript

import (
	"testing"
	"time"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
	calctask "sparkcalc/sparkos/tasks/calc"
)

const testTimeout = 1 * time.Second

type recvTask struct {
	cap kernel.Capability
	out chan<- kernel.Message
}

func (t *recvTask) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.cap)
	if !ok {
		return
	}
	for msg := range ch {
		t.out <- msg
	}
}

func runScript(t *testing.T, script string) <-chan kernel.Message {
	t.Helper()
	k := kernel.New()

	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !calcEP.Valid() || !logEP.Valid() {
		t.Fatal("expected valid capabilities")
	}

	logs := make(chan kernel.Message, 64)
	k.AddTask(&recvTask{cap: logEP.Restrict(kernel.RightRecv), out: logs})
	k.AddTask(calctask.New(nil, calcEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend), kernel.Capability{}))
	k.AddTask(New(calcEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend), kernel.Capability{}, script))
	return logs
}

func expectLogs(t *testing.T, logs <-chan kernel.Message, want ...string) {
	t.Helper()
	for _, w := range want {
		select {
		case msg := <-logs:
			if proto.Kind(msg.Kind) != proto.MsgLogLine {
				t.Fatalf("expected MsgLogLine, got %s", proto.Kind(msg.Kind))
			}
			if got := string(msg.Payload()); got != w {
				t.Fatalf("log = %q, want %q", got, w)
			}
		case <-time.After(testTimeout):
			t.Fatalf("timed out waiting for %q", w)
		}
	}
}

func TestScriptChainedOperations(t *testing.T) {
	logs := runScript(t, "5 + 3 + 2 =")
	expectLogs(t, logs,
		"calc: 8 + 2 = 10",
		"calc script: display=10 expression= history=1",
	)
}

func TestScriptSkipsUnknownRunes(t *testing.T) {
	logs := runScript(t, "2+q3=*")
	expectLogs(t, logs,
		"calc script: skip 'q'",
		"calc: 2 + 3 = 5",
		"calc script: display=5 expression=5 × history=1",
	)
}

func TestScriptClearKeepsHistory(t *testing.T) {
	logs := runScript(t, "1.5+2.5=c7")
	expectLogs(t, logs,
		"calc: 1.5 + 2.5 = 4",
		"calc script: display=7 expression= history=1",
	)
}
