package protocol

import (
	"encoding/json"
	"fmt"
)

// Message is the envelope exchanged with the game server.
// Requests that expect an answer carry a non-zero ID; the server replies
// with an ack message holding the same ID.
type Message struct {
	Type    MessageType     `json:"type"`
	ID      uint64          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType names a message on the wire.
type MessageType string

// Client → server
const (
	MsgJoin            MessageType = "join"             // join or rejoin a game (acked)
	MsgRename          MessageType = "rename"           // change display name
	MsgPartnerSelected MessageType = "partner_selected" // answer to select_partner
	MsgTrade           MessageType = "trade"            // submit three cards (acked)
	MsgPlayCard        MessageType = "play_card"        // submit one card (acked)
	MsgRefresh         MessageType = "refresh"          // ask for a snapshot (acked); also pushed by the server
)

// Server → client
const (
	MsgAck           MessageType = "ack"            // answer to a request
	MsgJoined        MessageType = "joined"         // someone entered the lobby
	MsgRenamed       MessageType = "renamed"        // someone changed name
	MsgRejoined      MessageType = "rejoined"       // a seat reconnected
	MsgDisconnected  MessageType = "disconnected"   // a seat or lobby member dropped
	MsgSelectPartner MessageType = "select_partner" // first player picks a partner
	MsgPause         MessageType = "pause"          // table is waiting on someone else
	MsgStartGame     MessageType = "start_game"     // seats assigned
	MsgStartHand     MessageType = "start_hand"     // new hand dealt
	MsgTraded        MessageType = "traded"         // a seat submitted its trade
	MsgFinishTrade   MessageType = "finish_trade"   // trade resolved
	MsgStartTurn     MessageType = "start_turn"     // a seat is to play
	MsgCardPlayed    MessageType = "card_played"    // a seat played a card
	MsgEndTrick      MessageType = "end_trick"      // trick complete
	MsgEndHand       MessageType = "end_hand"       // hand complete, new scores
	MsgEndGame       MessageType = "end_game"       // final scores
)

// NewMessage builds a message with a JSON payload. A nil payload is left empty.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload == nil {
		return msg, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	msg.Payload = data
	return msg, nil
}

// MustNewMessage is NewMessage for payloads that always marshal.
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// DecodePayload unmarshals the payload into v. An empty payload leaves v untouched.
func (m *Message) DecodePayload(v any) error {
	if len(m.Payload) == 0 || string(m.Payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return nil
}

// IsRequest reports whether the sender expects an ack.
func (m *Message) IsRequest() bool {
	return m.ID != 0 && m.Type != MsgAck
}
