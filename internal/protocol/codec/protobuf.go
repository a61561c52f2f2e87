package codec

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

const (
	fieldType    = "type"
	fieldID      = "id"
	fieldPayload = "payload"

	// ids above this lose precision as a float64 number value
	maxID = 1 << 53
)

// Protobuf carries the envelope as a google.protobuf.Struct in binary frames.
type Protobuf struct{}

func (Protobuf) FrameType() int { return websocket.BinaryMessage }

// Encode converts the JSON payload into a structpb value and marshals the envelope.
func (Protobuf) Encode(msg *protocol.Message) ([]byte, error) {
	env := getEnvelope()
	defer putEnvelope(env)

	env.Fields = map[string]*structpb.Value{
		fieldType: structpb.NewStringValue(string(msg.Type)),
	}
	if msg.ID != 0 {
		env.Fields[fieldID] = structpb.NewNumberValue(float64(msg.ID))
	}
	if len(msg.Payload) > 0 {
		var v any
		if err := json.Unmarshal(msg.Payload, &v); err != nil {
			return nil, fmt.Errorf("%w: payload: %v", apperrors.ErrInvalidMessage, err)
		}
		payload, err := structpb.NewValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: payload: %v", apperrors.ErrInvalidMessage, err)
		}
		env.Fields[fieldPayload] = payload
	}
	return proto.Marshal(env)
}

// Decode unmarshals the envelope and renders the payload back to JSON.
func (Protobuf) Decode(data []byte) (*protocol.Message, error) {
	env := getEnvelope()
	defer putEnvelope(env)

	if err := proto.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidMessage, err)
	}
	typ := env.GetFields()[fieldType].GetStringValue()
	if typ == "" {
		return nil, fmt.Errorf("%w: missing type", apperrors.ErrInvalidMessage)
	}

	msg := GetMessage()
	msg.Type = protocol.MessageType(typ)
	if id, ok := env.GetFields()[fieldID]; ok {
		n := id.GetNumberValue()
		if n < 0 || n > maxID || n != math.Trunc(n) {
			PutMessage(msg)
			return nil, fmt.Errorf("%w: bad id %v", apperrors.ErrInvalidMessage, n)
		}
		msg.ID = uint64(n)
	}
	if payload, ok := env.GetFields()[fieldPayload]; ok {
		raw, err := protojson.Marshal(payload)
		if err != nil {
			PutMessage(msg)
			return nil, fmt.Errorf("%w: payload: %v", apperrors.ErrInvalidMessage, err)
		}
		msg.Payload = raw
	}
	return msg, nil
}
