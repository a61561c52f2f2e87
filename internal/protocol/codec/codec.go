// Package codec turns protocol messages into websocket frames and back.
package codec

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// Format names.
const (
	FormatJSON     = "json"
	FormatProtobuf = "protobuf"
)

// Codec encodes the message envelope for one frame type.
// Decoded messages come from the pool; callers may return them with PutMessage.
type Codec interface {
	Encode(msg *protocol.Message) ([]byte, error)
	Decode(data []byte) (*protocol.Message, error)
	// FrameType is the websocket message type the encoding travels in.
	FrameType() int
}

// ForName returns the codec for a config value. An empty name selects JSON.
func ForName(name string) (Codec, error) {
	switch name {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatProtobuf:
		return Protobuf{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// JSON is the default text-frame encoding.
type JSON struct{}

func (JSON) FrameType() int { return websocket.TextMessage }
