package transport

import "github.com/palemoky/boompa-hearts/internal/protocol"

// --- 便捷方法 ---

// Join enters or re-enters game under the device uid.
func (c *Client) Join(uid, game, name string, ack func(protocol.AckPayload)) error {
	return c.Request(protocol.MsgJoin, protocol.JoinPayload{UID: uid, Game: game, Name: name}, ack)
}

// Rename changes the display name.
func (c *Client) Rename(name string) error {
	return c.Emit(protocol.MsgRename, protocol.RenamePayload{Name: name})
}

// SelectPartner answers select_partner with a 1-based choice.
func (c *Client) SelectPartner(choice int) error {
	return c.Emit(protocol.MsgPartnerSelected, protocol.PartnerSelectedPayload{Partner: choice})
}

// Trade submits three cards.
func (c *Client) Trade(cards []string, ack func(protocol.AckPayload)) error {
	return c.Request(protocol.MsgTrade, protocol.TradePayload{Cards: cards}, ack)
}

// PlayCard submits one card.
func (c *Client) PlayCard(card string, ack func(protocol.AckPayload)) error {
	return c.Request(protocol.MsgPlayCard, protocol.PlayCardPayload{Card: card}, ack)
}

// Refresh asks for a snapshot of the table.
func (c *Client) Refresh(ack func(protocol.AckPayload)) error {
	return c.Request(protocol.MsgRefresh, nil, ack)
}
