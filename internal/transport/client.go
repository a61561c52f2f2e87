// Package transport is the websocket connection to the game server.
package transport

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/logger"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxBackoff = 30 * time.Second
	bufferSize = 256

	defaultReconnectAttempts = 5
	defaultReconnectInterval = 2 * time.Second
	defaultHandshakeTimeout  = 10 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithCodec selects the frame encoding. JSON is the default.
func WithCodec(cd codec.Codec) Option {
	return func(c *Client) {
		if cd != nil {
			c.codec = cd
		}
	}
}

// WithReconnect sets how many redials follow a drop and the first backoff.
// Zero attempts disables reconnecting.
func WithReconnect(attempts int, interval time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithHandshakeTimeout bounds each dial.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.handshakeTimeout = d
		}
	}
}

// link is one dialed connection. A redial gets a fresh link so frames
// queued for a dropped connection are never written to the next one.
type link struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (l *link) close() {
	l.once.Do(func() {
		close(l.done)
		_ = l.ws.Close()
	})
}

// Client WebSocket 客户端
//
// Callbacks run on transport goroutines.
type Client struct {
	ServerURL string

	OnConnect      func()                      // after every successful dial
	OnDisconnect   func(reason string)         // connection dropped, a redial follows
	OnReconnecting func(attempt, maxTries int) // before each redial
	OnClose        func()                      // redials exhausted, client closed

	codec            codec.Codec
	maxAttempts      int
	interval         time.Duration
	handshakeTimeout time.Duration

	receive chan *protocol.Message
	closing chan struct{}

	mu     sync.RWMutex
	link   *link
	closed bool

	reconnecting atomic.Bool
	nextID       atomic.Uint64

	acksMu sync.Mutex
	acks   map[uint64]func(protocol.AckPayload)
}

// NewClient 创建客户端
func NewClient(serverURL string, opts ...Option) *Client {
	c := &Client{
		ServerURL:        serverURL,
		codec:            codec.JSON{},
		maxAttempts:      defaultReconnectAttempts,
		interval:         defaultReconnectInterval,
		handshakeTimeout: defaultHandshakeTimeout,
		receive:          make(chan *protocol.Message, bufferSize),
		closing:          make(chan struct{}),
		acks:             make(map[uint64]func(protocol.AckPayload)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the server and starts the pumps.
func (c *Client) Connect() error {
	if c.IsConnected() {
		return nil
	}
	return c.dial()
}

func (c *Client) dial() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: c.handshakeTimeout,
	}
	ws, _, err := dialer.Dial(c.ServerURL, nil)
	if err != nil {
		return err
	}

	l := &link{
		ws:   ws,
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = ws.Close()
		return apperrors.ErrNotConnected
	}
	c.link = l
	c.mu.Unlock()
	c.reconnecting.Store(false)

	c.setupPongHandler(l)
	go c.readPump(l)
	go c.writePump(l)

	logger.LogInfo("Connected to %s", c.ServerURL)
	if c.OnConnect != nil {
		c.OnConnect()
	}
	return nil
}

// Emit sends a message that expects no answer.
func (c *Client) Emit(msgType protocol.MessageType, payload any) error {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return c.write(msg)
}

// Request sends a message and calls ack with the server's answer. Acks still
// outstanding when the connection drops are discarded without being called.
func (c *Client) Request(msgType protocol.MessageType, payload any, ack func(protocol.AckPayload)) error {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	msg.ID = c.nextID.Add(1)

	c.acksMu.Lock()
	c.acks[msg.ID] = ack
	c.acksMu.Unlock()

	if err := c.write(msg); err != nil {
		c.acksMu.Lock()
		delete(c.acks, msg.ID)
		c.acksMu.Unlock()
		return err
	}
	return nil
}

func (c *Client) write(msg *protocol.Message) error {
	c.mu.RLock()
	l, closed := c.link, c.closed
	c.mu.RUnlock()
	if closed || l == nil {
		return apperrors.ErrNotConnected
	}

	data, err := c.codec.Encode(msg)
	if err != nil {
		return err
	}

	select {
	case l.send <- data:
		return nil
	case <-l.done:
		return apperrors.ErrNotConnected
	default:
		return apperrors.ErrSendBufferFull
	}
}

func (c *Client) deliverAck(msg *protocol.Message) {
	c.acksMu.Lock()
	fn, ok := c.acks[msg.ID]
	delete(c.acks, msg.ID)
	c.acksMu.Unlock()
	if !ok {
		logger.LogInfo("Dropping ack %d with no pending request", msg.ID)
		return
	}

	var ack protocol.AckPayload
	if err := msg.DecodePayload(&ack); err != nil {
		logger.LogError("Bad ack %d: %v", msg.ID, err)
		ack = protocol.AckPayload{Status: protocol.AckInvalid}
	}
	if fn != nil {
		fn(ack)
	}
}

func (c *Client) dropAcks() {
	c.acksMu.Lock()
	if n := len(c.acks); n > 0 {
		logger.LogInfo("Discarding %d pending acks", n)
	}
	clear(c.acks)
	c.acksMu.Unlock()
}

// Receive 接收消息 (阻塞). Acks are not delivered here.
func (c *Client) Receive() (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-c.closing:
		return nil, apperrors.ErrNotConnected
	}
}

// ReceiveWithTimeout 带超时接收消息
func (c *Client) ReceiveWithTimeout(timeout time.Duration) (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-time.After(timeout):
		return nil, errors.New("receive timeout")
	case <-c.closing:
		return nil, apperrors.ErrNotConnected
	}
}

// Close 关闭连接 and stops any redial.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.closing)
	l := c.link
	c.link = nil
	c.mu.Unlock()

	if l != nil {
		_ = l.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		l.close()
	}
	c.dropAcks()
}

// IsConnected 是否已连接
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.link != nil
}

// IsReconnecting 是否正在重连
func (c *Client) IsReconnecting() bool {
	return c.reconnecting.Load()
}
