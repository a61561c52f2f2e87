package transport

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/protocol/codec"
)

// readPump 从服务器读取消息
func (c *Client) readPump(l *link) {
	reason := "connection closed"
	defer func() {
		c.handleReadExit(l, reason)
	}()

	for {
		_, data, err := l.ws.ReadMessage()
		if err != nil {
			reason = readErrorReason(err)
			return
		}

		msg, err := c.codec.Decode(data)
		if err != nil {
			logger.LogError("Message decode error: %v", err)
			continue
		}

		if msg.Type == protocol.MsgAck {
			c.deliverAck(msg)
			codec.PutMessage(msg)
			continue
		}

		select {
		case c.receive <- msg:
		case <-c.closing:
			return
		}
	}
}

func readErrorReason(err error) string {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		if ce.Text != "" {
			return ce.Text
		}
		return "connection closed"
	}
	return err.Error()
}

func (c *Client) handleReadExit(l *link, reason string) {
	if r := recover(); r != nil {
		logger.LogPanic(r)
	}
	l.close()

	c.mu.Lock()
	if c.link == l {
		c.link = nil
	}
	closed := c.closed
	c.mu.Unlock()

	c.dropAcks()
	if closed {
		return
	}

	logger.LogInfo("Disconnected: %s", reason)
	if c.OnDisconnect != nil {
		c.OnDisconnect(reason)
	}
	go c.tryReconnect()
}

func (c *Client) setupPongHandler(l *link) {
	_ = l.ws.SetReadDeadline(time.Now().Add(pongWait))
	l.ws.SetPongHandler(func(string) error {
		_ = l.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
}

// writePump 向服务器写入消息
func (c *Client) writePump(l *link) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		l.close()
	}()

	frameType := c.codec.FrameType()
	for {
		select {
		case message := <-l.send:
			_ = l.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := l.ws.WriteMessage(frameType, message); err != nil {
				logger.LogError("Write failed: %v", err)
				return
			}

		case <-ticker.C:
			_ = l.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := l.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-l.done:
			return
		}
	}
}
