package logger

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

// Run writes every MsgLogLine it receives to the HAL logger, one line each.
func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for msg := range ch {
		if s.log == nil {
			continue
		}
		if proto.Kind(msg.Kind) != proto.MsgLogLine {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
}
