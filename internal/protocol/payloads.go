package protocol

// --- Client → server payloads ---

// JoinPayload identifies the device, the game and the display name.
type JoinPayload struct {
	UID  string `json:"uid"`
	Game string `json:"game"`
	Name string `json:"name"`
}

// RenamePayload carries a new display name.
type RenamePayload struct {
	Name string `json:"name"`
}

// PartnerSelectedPayload carries the 1-based index of the chosen partner.
type PartnerSelectedPayload struct {
	Partner int `json:"partner"`
}

// TradePayload carries the three cards passed to another seat.
type TradePayload struct {
	Cards []string `json:"cards"`
}

// PlayCardPayload carries the played card.
type PlayCardPayload struct {
	Card string `json:"card"`
}

// --- Acks ---

// AckStatus is the first value of an ack.
type AckStatus string

const (
	AckJoined   AckStatus = "joined"   // join accepted, Names lists the lobby
	AckRejoined AckStatus = "rejoined" // join accepted, Snapshot restores the table
	AckFull     AckStatus = "full"     // join refused
	AckPending  AckStatus = "pending"  // trade accepted
	AckPlayed   AckStatus = "played"   // card accepted
	AckInvalid  AckStatus = "invalid"  // action refused
	AckOK       AckStatus = "ok"
)

// AckPayload answers a request.
type AckPayload struct {
	Status   AckStatus        `json:"status"`
	Names    []string         `json:"names,omitempty"`
	Snapshot *SnapshotPayload `json:"snapshot,omitempty"`
}

// Rejected reports whether the server refused the request.
// Every status other than invalid or full counts as success.
func (a AckPayload) Rejected() bool {
	return a.Status == AckInvalid || a.Status == AckFull
}

// --- Server → client payloads ---

// NamePayload is sent with joined.
type NamePayload struct {
	Name string `json:"name"`
}

// RenamedPayload is sent with renamed.
type RenamedPayload struct {
	Name string `json:"name"`
	Seat int    `json:"seat"`
}

// SeatPayload is sent with rejoined, traded and start_turn.
type SeatPayload struct {
	Seat int `json:"seat"`
}

// DisconnectedPayload names a lobby member while waiting, a seat otherwise.
type DisconnectedPayload struct {
	Seat *int   `json:"seat,omitempty"`
	Name string `json:"name,omitempty"`
}

// SelectPartnerPayload lists the players the partner can be chosen from.
type SelectPartnerPayload struct {
	Names []string `json:"names"`
}

// StartGamePayload assigns the local seat and the seat names.
type StartGamePayload struct {
	Seat  int      `json:"seat"`
	Names []string `json:"names"`
}

// StartHandPayload deals a new hand.
type StartHandPayload struct {
	Cards   []string `json:"cards"`
	HandNum int      `json:"hand_num"`
}

// FinishTradePayload resolves the trade for the local seat.
type FinishTradePayload struct {
	Given    []string `json:"given"`
	Received []string `json:"received"`
}

// CardPlayedPayload reports a played card.
type CardPlayedPayload struct {
	Card string `json:"card"`
	Seat int    `json:"seat"`
}

// EndTrickPayload names the seat that took the trick.
type EndTrickPayload struct {
	Winner int `json:"winner"`
}

// ScoresPayload is sent with end_hand and end_game.
type ScoresPayload struct {
	Score02 int `json:"score_02"`
	Score13 int `json:"score_13"`
}

// SnapshotPayload is the full table state sent on rejoin and refresh.
// Fields after Hand only apply to the matching state.
type SnapshotPayload struct {
	State        string   `json:"state"` // waiting, trading, playing or ended
	Names        []string `json:"names"`
	Seat         int      `json:"seat"`
	Disconnected []bool   `json:"disconnected,omitempty"`
	HandNum      int      `json:"hand_num"`
	Score02      int      `json:"score_02"`
	Score13      int      `json:"score_13"`
	Hand         []string `json:"hand,omitempty"`

	// trading
	PendingTrade []string `json:"pending_trade,omitempty"`
	HaveTraded   []bool   `json:"have_traded,omitempty"`

	// playing
	HeartsBroken bool     `json:"hearts_broken,omitempty"`
	Tricks02     int      `json:"tricks_02,omitempty"`
	Tricks13     int      `json:"tricks_13,omitempty"`
	TrickLeader  int      `json:"trick_start_player,omitempty"`
	TrickCards   []string `json:"trick_cards,omitempty"`
	LastTrick    []string `json:"last_trick,omitempty"`
	TookPoints   []bool   `json:"took_points,omitempty"`
}
