package codec

import (
	"encoding/json"
	"fmt"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// Encode writes the envelope through a pooled buffer.
func (JSON) Encode(msg *protocol.Message) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	if err := json.NewEncoder(buf).Encode(msg); err != nil {
		return nil, err
	}
	// Encoder appends a newline; the copy detaches the result from the pool
	data := buf.Bytes()
	return append([]byte(nil), data[:len(data)-1]...), nil
}

// Decode parses a text frame. Messages without a type are rejected.
func (JSON) Decode(data []byte) (*protocol.Message, error) {
	msg := GetMessage()
	if err := json.Unmarshal(data, msg); err != nil {
		PutMessage(msg)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidMessage, err)
	}
	if msg.Type == "" {
		PutMessage(msg)
		return nil, fmt.Errorf("%w: missing type", apperrors.ErrInvalidMessage)
	}
	return msg, nil
}
