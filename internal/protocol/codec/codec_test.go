package codec

import (
	"errors"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

func TestForName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frameType int
		wantErr   bool
	}{
		{"", websocket.TextMessage, false},
		{FormatJSON, websocket.TextMessage, false},
		{FormatProtobuf, websocket.BinaryMessage, false},
		{"xml", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := ForName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.frameType, c.FrameType())
		})
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	t.Parallel()

	seat := 2
	messages := []*protocol.Message{
		protocol.MustNewMessage(protocol.MsgPause, nil),
		protocol.MustNewMessage(protocol.MsgCardPlayed, protocol.CardPlayedPayload{Card: "hQ", Seat: 3}),
		protocol.MustNewMessage(protocol.MsgDisconnected, protocol.DisconnectedPayload{Seat: &seat}),
		protocol.MustNewMessage(protocol.MsgAck, protocol.AckPayload{
			Status: protocol.AckRejoined,
			Snapshot: &protocol.SnapshotPayload{
				State:      "playing",
				Names:      []string{"ann", "bo", "cy", "di"},
				Seat:       1,
				Hand:       []string{"c2", "hA"},
				TrickCards: []string{"s4"},
				TookPoints: []bool{true, false, false, false},
			},
		}),
	}
	messages[3].ID = 42

	for _, c := range []Codec{JSON{}, Protobuf{}} {
		for _, msg := range messages {
			data, err := c.Encode(msg)
			require.NoError(t, err)

			got, err := c.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, msg.Type, got.Type)
			assert.Equal(t, msg.ID, got.ID)
			if msg.Payload == nil {
				assert.Empty(t, got.Payload)
			} else {
				assert.JSONEq(t, string(msg.Payload), string(got.Payload))
			}
			PutMessage(got)
		}
	}
}

func TestProtobuf_DecodedPayloadIsUsable(t *testing.T) {
	t.Parallel()

	msg := protocol.MustNewMessage(protocol.MsgEndHand, protocol.ScoresPayload{Score02: 13, Score13: 26})
	data, err := Protobuf{}.Encode(msg)
	require.NoError(t, err)

	got, err := Protobuf{}.Decode(data)
	require.NoError(t, err)

	var scores protocol.ScoresPayload
	require.NoError(t, got.DecodePayload(&scores))
	assert.Equal(t, protocol.ScoresPayload{Score02: 13, Score13: 26}, scores)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	noType, err := proto.Marshal(&structpb.Struct{Fields: map[string]*structpb.Value{
		fieldID: structpb.NewNumberValue(1),
	}})
	require.NoError(t, err)
	badID, err := proto.Marshal(&structpb.Struct{Fields: map[string]*structpb.Value{
		fieldType: structpb.NewStringValue("ack"),
		fieldID:   structpb.NewNumberValue(-3),
	}})
	require.NoError(t, err)

	tests := []struct {
		name  string
		codec Codec
		data  []byte
	}{
		{"json garbage", JSON{}, []byte("{not json")},
		{"json missing type", JSON{}, []byte(`{"payload":{}}`)},
		{"protobuf garbage", Protobuf{}, []byte{0xff, 0xff, 0xff}},
		{"protobuf missing type", Protobuf{}, noType},
		{"protobuf negative id", Protobuf{}, badID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg, err := tt.codec.Decode(tt.data)
			assert.Nil(t, msg)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidMessage))
		})
	}
}

func TestJSON_EncodeWireShape(t *testing.T) {
	t.Parallel()

	msg := protocol.MustNewMessage(protocol.MsgTrade, protocol.TradePayload{Cards: []string{"c2", "d3", "sQ"}})
	msg.ID = 7
	data, err := JSON{}.Encode(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"trade","id":7,"payload":{"cards":["c2","d3","sQ"]}}`, string(data))
}
