package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/protocol"
	"github.com/palemoky/boompa-hearts/internal/protocol/codec"
)

var upgrader = websocket.Upgrader{}

// gameServer acks every request with status ok and echoes everything else.
// The first dropAfter connections are closed after reading one frame.
type gameServer struct {
	codec     codec.Codec
	dropAfter int32
	conns     atomic.Int32
}

func (s *gameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer ws.Close()
	n := s.conns.Add(1)

	for {
		mt, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		if n <= s.dropAfter {
			return
		}
		msg, err := s.codec.Decode(data)
		if err != nil {
			return
		}
		if msg.IsRequest() {
			ack := protocol.MustNewMessage(protocol.MsgAck, protocol.AckPayload{Status: protocol.AckOK})
			ack.ID = msg.ID
			if data, err = s.codec.Encode(ack); err != nil {
				return
			}
		}
		if err := ws.WriteMessage(mt, data); err != nil {
			return
		}
	}
}

func startServer(t *testing.T, s *gameServer) string {
	t.Helper()
	if s.codec == nil {
		s.codec = codec.JSON{}
	}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClient_ConnectEmitReceive(t *testing.T) {
	t.Parallel()

	for _, cd := range []codec.Codec{codec.JSON{}, codec.Protobuf{}} {
		url := startServer(t, &gameServer{codec: cd})

		client := NewClient(url, WithCodec(cd), WithReconnect(0, 0))
		var connects atomic.Int32
		client.OnConnect = func() { connects.Add(1) }

		require.NoError(t, client.Connect())
		defer client.Close()
		assert.True(t, client.IsConnected())
		assert.EqualValues(t, 1, connects.Load())

		require.NoError(t, client.Rename("ann"))

		msg, err := client.ReceiveWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, protocol.MsgRename, msg.Type)
		var p protocol.RenamePayload
		require.NoError(t, msg.DecodePayload(&p))
		assert.Equal(t, "ann", p.Name)
	}
}

func TestClient_RequestAck(t *testing.T) {
	t.Parallel()

	url := startServer(t, &gameServer{})
	client := NewClient(url)
	require.NoError(t, client.Connect())
	defer client.Close()

	acks := make(chan protocol.AckPayload, 2)
	require.NoError(t, client.Trade([]string{"c2", "d3", "sQ"}, func(a protocol.AckPayload) { acks <- a }))
	require.NoError(t, client.PlayCard("hA", func(a protocol.AckPayload) { acks <- a }))

	for i := 0; i < 2; i++ {
		select {
		case ack := <-acks:
			assert.Equal(t, protocol.AckOK, ack.Status)
		case <-time.After(time.Second):
			t.Fatal("ack not delivered")
		}
	}

	// Acks never reach Receive
	_, err := client.ReceiveWithTimeout(50 * time.Millisecond)
	assert.Error(t, err)
}

func TestClient_NotConnected(t *testing.T) {
	t.Parallel()

	client := NewClient("ws://127.0.0.1:1/ws")
	assert.False(t, client.IsConnected())

	err := client.Emit(protocol.MsgRename, protocol.RenamePayload{Name: "x"})
	assert.True(t, errors.Is(err, apperrors.ErrNotConnected))

	called := false
	err = client.Refresh(func(protocol.AckPayload) { called = true })
	assert.True(t, errors.Is(err, apperrors.ErrNotConnected))
	assert.False(t, called)
	assert.Empty(t, client.acks, "failed request leaves no pending ack")
}

func TestClient_ReconnectDropsPendingAcks(t *testing.T) {
	t.Parallel()

	srv := &gameServer{dropAfter: 1}
	url := startServer(t, srv)

	client := NewClient(url, WithReconnect(3, 10*time.Millisecond))
	defer client.Close()

	var connects, attempts atomic.Int32
	reasons := make(chan string, 1)
	client.OnConnect = func() { connects.Add(1) }
	client.OnDisconnect = func(reason string) { reasons <- reason }
	client.OnReconnecting = func(_, maxTries int) {
		attempts.Add(1)
		assert.Equal(t, 3, maxTries)
	}

	require.NoError(t, client.Connect())

	var acked atomic.Bool
	require.NoError(t, client.Join("uid", "game", "ann", func(protocol.AckPayload) { acked.Store(true) }))

	select {
	case <-reasons:
	case <-time.After(time.Second):
		t.Fatal("no disconnect reported")
	}

	require.Eventually(t, func() bool { return connects.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, client.IsConnected())
	assert.EqualValues(t, 1, attempts.Load())
	assert.False(t, acked.Load())
	assert.EqualValues(t, 2, srv.conns.Load())

	// The new connection serves requests again
	acks := make(chan protocol.AckPayload, 1)
	require.NoError(t, client.Refresh(func(a protocol.AckPayload) { acks <- a }))
	select {
	case ack := <-acks:
		assert.False(t, ack.Rejected())
	case <-time.After(time.Second):
		t.Fatal("ack not delivered after reconnect")
	}
	assert.False(t, acked.Load(), "ack from the dropped connection never fires")
}

func TestClient_GivesUp(t *testing.T) {
	t.Parallel()

	// First dial is accepted then dropped; every redial is refused
	var dials atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dials.Add(1) > 1 {
			http.Error(w, "gone", http.StatusServiceUnavailable)
			return
		}
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = ws.Close()
	}))
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	client := NewClient(url, WithReconnect(2, 5*time.Millisecond))
	closed := make(chan struct{})
	client.OnClose = func() { close(closed) }
	require.NoError(t, client.Connect())

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("client did not give up")
	}
	assert.False(t, client.IsConnected())
	assert.EqualValues(t, 3, dials.Load())
	_, err := client.Receive()
	assert.True(t, errors.Is(err, apperrors.ErrNotConnected))
}

func TestClient_CloseStopsReconnect(t *testing.T) {
	t.Parallel()

	url := startServer(t, &gameServer{})
	client := NewClient(url, WithReconnect(5, time.Hour))
	var disconnects atomic.Int32
	client.OnDisconnect = func(string) { disconnects.Add(1) }

	require.NoError(t, client.Connect())
	client.Close()
	client.Close()

	assert.False(t, client.IsConnected())
	assert.False(t, client.IsReconnecting())
	assert.Zero(t, disconnects.Load(), "a local close is not a drop")
	assert.Error(t, client.Emit(protocol.MsgRename, nil))
}
