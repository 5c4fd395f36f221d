package calc

import (
	"fmt"

	"sparkcalc/hal"
	"sparkcalc/internal/fbdisplay"
	calcengine "sparkcalc/sparkos/calc"
	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const replyRetryLimit = 50

// Task is the calculator widget. It owns one engine and is the only code that
// touches it.
type Task struct {
	disp hal.Display
	ep   kernel.Capability

	logCap  kernel.Capability
	timeCap kernel.Capability

	tape    bool
	termCap kernel.Capability

	eng   *calcengine.Engine
	focus int

	// histTop is the first visible entry of the newest-first history list.
	histTop int

	fb hal.Framebuffer
	d  *fbdisplay.Display

	inbuf []byte
}

// New returns the widget task drawing into disp.
func New(disp hal.Display, ep, logCap, timeCap kernel.Capability) *Task {
	return &Task{disp: disp, ep: ep, logCap: logCap, timeCap: timeCap}
}

// NewTape returns a task that prints completed calculations to the terminal
// service instead of drawing the widget.
func NewTape(ep, logCap, timeCap, termCap kernel.Capability) *Task {
	return &Task{ep: ep, logCap: logCap, timeCap: timeCap, tape: true, termCap: termCap}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}

	t.eng = calcengine.New()
	t.focus = calcengine.CellFor(calcengine.Button0)

	if t.tape {
		t.tapeStart(ctx)
	} else if t.disp != nil {
		if t.fb = t.disp.Framebuffer(); t.fb != nil {
			t.d = fbdisplay.New(t.fb)
		}
	}
	t.render()

	for msg := range ch {
		t.handleMessage(ctx, msg)
	}
}

func (t *Task) handleMessage(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgTermInput:
		t.handleInput(ctx, msg.Payload())
		t.render()

	case proto.MsgCalcPress:
		v, ok := proto.DecodeCalcPressPayload(msg.Payload())
		if !ok {
			return
		}
		b := calcengine.Button(v)
		if !b.Valid() {
			return
		}
		t.press(ctx, b)
		t.render()

	case proto.MsgCalcStatus:
		t.replyStatus(ctx, msg)
	}
}

func (t *Task) press(ctx *kernel.Context, b calcengine.Button) {
	entry, done := t.eng.Press(b)

	if b == calcengine.ButtonClearHistory {
		t.histTop = 0
		t.tapeClearHistory(ctx)
	}
	if !done {
		return
	}
	t.histTop = 0
	t.log(ctx, fmt.Sprintf("calc: %s = %s", entry.Expression, entry.Result))
	t.tapeEntry(ctx, entry)
}

func (t *Task) replyStatus(ctx *kernel.Context, msg kernel.Message) {
	if !msg.Cap.Valid() {
		return
	}

	requestID, ok := proto.DecodeCalcStatusPayload(msg.Payload())
	if !ok {
		payload := proto.ErrorPayload(
			proto.ErrBadMessage,
			proto.MsgCalcStatus,
			proto.ErrorDetailWithRequestID(0, nil),
		)
		_ = ctx.SendToCapRetry(msg.Cap, uint16(proto.MsgError), payload, kernel.Capability{}, replyRetryLimit)
		return
	}

	payload := proto.CalcStatusRespPayload(requestID, t.eng.HistoryLen(), t.eng.Display(), t.eng.Expression())
	_ = ctx.SendToCapRetry(msg.Cap, uint16(proto.MsgCalcStatusResp), payload, kernel.Capability{}, replyRetryLimit)
}

func (t *Task) log(ctx *kernel.Context, line string) {
	if !t.logCap.Valid() {
		return
	}
	if t.timeCap.Valid() {
		_ = logclient.LogRetry(ctx, t.timeCap, t.logCap, line)
		return
	}
	_ = logclient.Log(ctx, t.logCap, line)
}
