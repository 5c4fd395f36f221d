package term

import (
	"sparkcalc/hal"
	"sparkcalc/internal/fbdisplay"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"tinygo.org/x/tinyterm"
)

// Service renders MsgTermWrite bytes as a VT100 terminal on the framebuffer.
// The screen is flushed at most once per tick.
type Service struct {
	disp hal.Display
	ep   kernel.Capability

	fb hal.Framebuffer
	d  *fbdisplay.Display
	t  *tinyterm.Terminal
}

func New(disp hal.Display, ep kernel.Capability) *Service {
	return &Service{disp: disp, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}

	if s.disp == nil {
		return
	}
	s.fb = s.disp.Framebuffer()
	if s.fb == nil {
		return
	}

	s.d = fbdisplay.New(s.fb)
	s.reset()

	dirty := false

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	for {
		select {
		case <-tickCh:
			if dirty && !kernel.InPanicMode() {
				s.t.Display()
				dirty = false
			}

		case msg, ok := <-ch:
			if !ok {
				return
			}
			switch proto.Kind(msg.Kind) {
			case proto.MsgTermWrite:
				_, _ = s.t.Write(msg.Payload())
				dirty = true
			case proto.MsgTermClear:
				s.reset()
				dirty = true
			}
		}
	}
}

func (s *Service) reset() {
	s.t = tinyterm.NewTerminal(s.d)
	s.t.Configure(&tinyterm.Config{
		Font:              fbdisplay.Font,
		FontHeight:        fbdisplay.FontHeight,
		FontOffset:        fbdisplay.FontOffset,
		UseSoftwareScroll: true,
	})
	s.fb.ClearRGB(0, 0, 0)
	_ = s.fb.Present()
}
