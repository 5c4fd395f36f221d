package time

import (
	"fmt"
	"sync"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type sleepState struct {
	mu       sync.Mutex
	replyCap kernel.Capability
	nextID   uint32
}

type sleepStateKey struct{}

// Sleep blocks the calling task for dt ticks via the time service.
func Sleep(ctx *kernel.Context, timeCap kernel.Capability, dt uint32) error {
	if ctx == nil {
		return fmt.Errorf("time sleep: nil context")
	}
	if !timeCap.Valid() {
		return fmt.Errorf("time sleep: no capability")
	}

	st := ctx.TaskLocal(sleepStateKey{}, func() any { return &sleepState{} }).(*sleepState)
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.replyCap.Valid() {
		st.replyCap = ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
		if !st.replyCap.Valid() {
			return fmt.Errorf("time sleep: allocate reply endpoint")
		}
	}

	replySend := st.replyCap.Restrict(kernel.RightSend)
	replyRecv := st.replyCap.Restrict(kernel.RightRecv)

	st.nextID++
	if st.nextID == 0 {
		st.nextID++
	}
	requestID := st.nextID

	res := ctx.SendToCapRetry(timeCap, uint16(proto.MsgSleep), proto.SleepPayload(requestID, dt), replySend, 500)
	if res != kernel.SendOK {
		return fmt.Errorf("time sleep send: %s", res)
	}

	for {
		msg, ok := ctx.Recv(replyRecv)
		if !ok {
			return fmt.Errorf("time sleep: recv")
		}

		switch proto.Kind(msg.Kind) {
		case proto.MsgWake:
			reqID, ok := proto.DecodeWakePayload(msg.Payload())
			if !ok {
				return fmt.Errorf("time wake: bad payload")
			}
			if reqID != requestID {
				continue
			}
			return nil

		case proto.MsgError:
			code, ref, detail, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok {
				return fmt.Errorf("time error: bad payload")
			}
			if reqID, _, ok := proto.DecodeErrorDetailWithRequestID(detail); ok && reqID != requestID {
				continue
			}
			return fmt.Errorf("time error: code=%s ref=%s", code, ref)
		}
	}
}
