package logger

import (
	"sync"
	"testing"
	"time"

	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type lineLogger struct {
	mu    sync.Mutex
	lines []string
	added chan struct{}
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
	l.added <- struct{}{}
}

func (l *lineLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

type logTask struct {
	to    kernel.Capability
	lines []string
	kinds []proto.Kind
}

func (t *logTask) Run(ctx *kernel.Context) {
	for i, line := range t.lines {
		if t.kinds[i] == proto.MsgLogLine {
			logclient.Log(ctx, t.to, line)
			continue
		}
		ctx.SendToCapResult(t.to, uint16(t.kinds[i]), []byte(line), kernel.Capability{})
	}
}

func TestServiceWritesLogLinesOnly(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	sink := &lineLogger{added: make(chan struct{}, 8)}
	k.AddTask(New(sink, ep.Restrict(kernel.RightRecv)))
	k.AddTask(&logTask{
		to:    ep.Restrict(kernel.RightSend),
		lines: []string{"calc: 1 + 1 = 2", "not a log", "calc: 2 × 3 = 6"},
		kinds: []proto.Kind{proto.MsgLogLine, proto.MsgTermWrite, proto.MsgLogLine},
	})

	for i := 0; i < 2; i++ {
		select {
		case <-sink.added:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for log line")
		}
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.lines) != 2 || sink.lines[0] != "calc: 1 + 1 = 2" || sink.lines[1] != "calc: 2 × 3 = 6" {
		t.Fatalf("lines = %q", sink.lines)
	}
}
