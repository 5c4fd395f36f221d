package timesvc

import (
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const maxSleepers = 32

type sleeper struct {
	inUse bool
	due   uint64
	id    uint32
	reply kernel.Capability
}

// Service answers MsgSleep requests with MsgWake once the kernel tick reaches the
// requested deadline.
type Service struct {
	ep kernel.Capability

	now      uint64
	sleepers [maxSleepers]sleeper
}

func New(ep kernel.Capability) *Service {
	return &Service{ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	s.now = ctx.NowTick()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.handle(ctx, msg)
		case tick := <-tickCh:
			s.now = tick
			s.wakeReady(ctx)
		}
	}
}

func (s *Service) handle(ctx *kernel.Context, msg kernel.Message) {
	if proto.Kind(msg.Kind) != proto.MsgSleep {
		return
	}
	if !msg.Cap.Valid() {
		return
	}

	requestID, dt, ok := proto.DecodeSleepPayload(msg.Payload())
	if !ok {
		payload := proto.ErrorPayload(
			proto.ErrBadMessage,
			proto.MsgSleep,
			proto.ErrorDetailWithRequestID(0, nil),
		)
		_ = ctx.SendToCap(msg.Cap, uint16(proto.MsgError), payload, kernel.Capability{})
		return
	}
	if dt == 0 {
		_ = ctx.SendToCap(msg.Cap, uint16(proto.MsgWake), proto.WakePayload(requestID), kernel.Capability{})
		return
	}
	if ok := s.schedule(s.now+uint64(dt), requestID, msg.Cap); !ok {
		payload := proto.ErrorPayload(
			proto.ErrOverflow,
			proto.MsgSleep,
			proto.ErrorDetailWithRequestID(requestID, nil),
		)
		_ = ctx.SendToCap(msg.Cap, uint16(proto.MsgError), payload, kernel.Capability{})
	}
}

func (s *Service) schedule(due uint64, requestID uint32, reply kernel.Capability) bool {
	for i := range s.sleepers {
		if s.sleepers[i].inUse {
			continue
		}
		s.sleepers[i] = sleeper{inUse: true, due: due, id: requestID, reply: reply}
		return true
	}
	return false
}

func (s *Service) wakeReady(ctx *kernel.Context) {
	for i := range s.sleepers {
		sl := &s.sleepers[i]
		if !sl.inUse || sl.due > s.now {
			continue
		}
		_ = ctx.SendToCap(sl.reply, uint16(proto.MsgWake), proto.WakePayload(sl.id), kernel.Capability{})
		*sl = sleeper{}
	}
}
