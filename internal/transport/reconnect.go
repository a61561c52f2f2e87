package transport

import (
	"time"

	"github.com/palemoky/boompa-hearts/internal/logger"
)

// tryReconnect 尝试重连 with exponential backoff.
func (c *Client) tryReconnect() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			c.reconnecting.Store(false)
		}
	}()

	if !c.reconnecting.CompareAndSwap(false, true) {
		return
	}

	backoff := c.interval
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if c.OnReconnecting != nil {
			c.OnReconnecting(attempt, c.maxAttempts)
		}

		select {
		case <-time.After(backoff):
		case <-c.closing:
			c.reconnecting.Store(false)
			return
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}

		// dial clears the reconnecting flag before its pumps can fail again
		if err := c.dial(); err != nil {
			logger.LogError("Reconnect %d/%d failed: %v", attempt, c.maxAttempts, err)
			continue
		}
		return
	}

	c.reconnecting.Store(false)
	logger.LogError("Giving up after %d reconnect attempts", c.maxAttempts)
	c.Close()
	if c.OnClose != nil {
		c.OnClose()
	}
}
