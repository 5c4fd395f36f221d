package term

import (
	"testing"
	"time"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const testTimeout = 1 * time.Second

// presentFB hands a copy of the buffer to frames on every Present.
type presentFB struct {
	w, h   int
	buf    []byte
	frames chan []byte
}

func (f *presentFB) Width() int              { return f.w }
func (f *presentFB) Height() int             { return f.h }
func (f *presentFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *presentFB) StrideBytes() int        { return f.w * 2 }
func (f *presentFB) Buffer() []byte          { return f.buf }

func (f *presentFB) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *presentFB) Present() error {
	cp := make([]byte, len(f.buf))
	copy(cp, f.buf)
	select {
	case f.frames <- cp:
	default:
	}
	return nil
}

type testDisplay struct {
	fb hal.Framebuffer
}

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type sendTask struct {
	to   kernel.Capability
	kind proto.Kind
	data []byte
}

func (t *sendTask) Run(ctx *kernel.Context) {
	ctx.SendToCapRetry(t.to, uint16(t.kind), t.data, kernel.Capability{}, 100)
}

func lit(frame []byte) int {
	n := 0
	for _, b := range frame {
		if b != 0 {
			n++
		}
	}
	return n
}

func TestWriteIsDrawnOnTick(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	fb := &presentFB{w: 160, h: 80, buf: make([]byte, 160*80*2), frames: make(chan []byte, 64)}
	k.AddTask(New(testDisplay{fb: fb}, ep.Restrict(kernel.RightRecv)))
	k.AddTask(&sendTask{to: ep.Restrict(kernel.RightSend), kind: proto.MsgTermWrite, data: []byte("42")})

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for i := uint64(1); ; i++ {
			select {
			case <-stop:
				return
			case <-time.After(time.Millisecond):
				k.TickTo(i)
			}
		}
	}()

	deadline := time.After(testTimeout)
	for {
		select {
		case frame := <-fb.frames:
			if lit(frame) > 0 {
				return
			}
		case <-deadline:
			t.Fatal("terminal never presented text")
		}
	}
}
