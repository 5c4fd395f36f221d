package kernel

// SendToCapRetry is SendToCapResult that waits one tick and tries again while the
// destination queue is full, at most limit times.
//
// A limit of 0 never blocks.
func (c *Context) SendToCapRetry(toCap Capability, kind uint16, payload []byte, xfer Capability, limit int) SendResult {
	res := c.SendToCapResult(toCap, kind, payload, xfer)
	for tries := 0; res == SendErrQueueFull && tries < limit; tries++ {
		c.BlockOnTick()
		res = c.SendToCapResult(toCap, kind, payload, xfer)
	}
	return res
}
