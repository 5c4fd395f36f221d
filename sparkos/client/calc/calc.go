package calc

import (
	"fmt"
	"sync"

	calcengine "sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const retryLimit = 500

// Press sends one keypad press to the calculator task.
func Press(ctx *kernel.Context, calcCap kernel.Capability, b calcengine.Button) error {
	if ctx == nil {
		return fmt.Errorf("calc press: nil context")
	}
	if !calcCap.Valid() {
		return fmt.Errorf("calc press: no capability")
	}
	if !b.Valid() {
		return fmt.Errorf("calc press: invalid button %d", b)
	}
	res := ctx.SendToCapRetry(calcCap, uint16(proto.MsgCalcPress), proto.CalcPressPayload(uint8(b)), kernel.Capability{}, retryLimit)
	if res != kernel.SendOK {
		return fmt.Errorf("calc press send: %s", res)
	}
	return nil
}

type statusState struct {
	mu       sync.Mutex
	replyCap kernel.Capability
	nextID   uint32
}

type statusStateKey struct{}

// Status is what the calculator currently shows.
type Status struct {
	Display    string
	Expression string
	HistoryLen int
}

// GetStatus asks the calculator task for its visible state and waits for the reply.
func GetStatus(ctx *kernel.Context, calcCap kernel.Capability) (Status, error) {
	if ctx == nil {
		return Status{}, fmt.Errorf("calc status: nil context")
	}
	if !calcCap.Valid() {
		return Status{}, fmt.Errorf("calc status: no capability")
	}

	st := ctx.TaskLocal(statusStateKey{}, func() any { return &statusState{} }).(*statusState)
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.replyCap.Valid() {
		st.replyCap = ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
		if !st.replyCap.Valid() {
			return Status{}, fmt.Errorf("calc status: allocate reply endpoint")
		}
	}

	replySend := st.replyCap.Restrict(kernel.RightSend)
	replyRecv := st.replyCap.Restrict(kernel.RightRecv)

	st.nextID++
	if st.nextID == 0 {
		st.nextID++
	}
	requestID := st.nextID

	res := ctx.SendToCapRetry(calcCap, uint16(proto.MsgCalcStatus), proto.CalcStatusPayload(requestID), replySend, retryLimit)
	if res != kernel.SendOK {
		return Status{}, fmt.Errorf("calc status send: %s", res)
	}

	for {
		msg, ok := ctx.Recv(replyRecv)
		if !ok {
			return Status{}, fmt.Errorf("calc status: recv")
		}

		switch proto.Kind(msg.Kind) {
		case proto.MsgCalcStatusResp:
			reqID, hist, display, expr, ok := proto.DecodeCalcStatusRespPayload(msg.Payload())
			if !ok {
				return Status{}, fmt.Errorf("calc status resp: bad payload")
			}
			if reqID != requestID {
				continue
			}
			return Status{Display: display, Expression: expr, HistoryLen: hist}, nil

		case proto.MsgError:
			code, ref, detail, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok {
				return Status{}, fmt.Errorf("calc status error: bad payload")
			}
			if reqID, _, ok := proto.DecodeErrorDetailWithRequestID(detail); ok && reqID != requestID {
				continue
			}
			return Status{}, fmt.Errorf("calc status error: code=%s ref=%s", code, ref)
		}
	}
}
