package term

import (
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Write sends a best-effort payload to the terminal service.
func Write(ctx *kernel.Context, termCap kernel.Capability, payload []byte) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	if len(payload) > kernel.MaxMessageBytes {
		payload = payload[:kernel.MaxMessageBytes]
	}
	return ctx.SendToCapResult(termCap, uint16(proto.MsgTermWrite), payload, kernel.Capability{})
}

// WriteString sends a best-effort string to the terminal service.
func WriteString(ctx *kernel.Context, termCap kernel.Capability, s string) kernel.SendResult {
	return Write(ctx, termCap, []byte(s))
}

// Clear requests a terminal reset/clear.
func Clear(ctx *kernel.Context, termCap kernel.Capability) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	return ctx.SendToCapResult(termCap, uint16(proto.MsgTermClear), nil, kernel.Capability{})
}

const retryLimit = 500

// WriteAll splits payload into message-sized chunks and waits out full queues.
func WriteAll(ctx *kernel.Context, termCap kernel.Capability, payload []byte) error {
	if ctx == nil {
		return fmt.Errorf("term write: nil context")
	}
	for len(payload) > 0 {
		chunk := payload
		if len(chunk) > kernel.MaxMessageBytes {
			chunk = chunk[:kernel.MaxMessageBytes]
		}
		res := ctx.SendToCapRetry(termCap, uint16(proto.MsgTermWrite), chunk, kernel.Capability{}, retryLimit)
		if res != kernel.SendOK {
			return fmt.Errorf("term write: %s", res)
		}
		payload = payload[len(chunk):]
	}
	return nil
}

// ClearAll is Clear that waits out a full queue.
func ClearAll(ctx *kernel.Context, termCap kernel.Capability) error {
	if ctx == nil {
		return fmt.Errorf("term clear: nil context")
	}
	res := ctx.SendToCapRetry(termCap, uint16(proto.MsgTermClear), nil, kernel.Capability{}, retryLimit)
	if res != kernel.SendOK {
		return fmt.Errorf("term clear: %s", res)
	}
	return nil
}
