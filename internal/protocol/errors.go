package protocol

// Error codes
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001
	ErrCodeNotConnected   = 1002
	ErrCodeSendBufferFull = 1003
	ErrCodeGameFull       = 2001
	ErrCodeInvalidName    = 2002
	ErrCodeInvalidMove    = 3001
	ErrCodeNoSelection    = 3002
	ErrCodeActionPending  = 3003
	ErrCodeInvalidCard    = 3004
	ErrCodeUnexpected     = 3005 // event not valid in the current phase
)

// ErrorMessages maps codes to user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "unknown error",
	ErrCodeInvalidMsg:     "invalid message",
	ErrCodeNotConnected:   "not connected to the server",
	ErrCodeSendBufferFull: "send buffer full",
	ErrCodeGameFull:       "game is full",
	ErrCodeInvalidName:    "name must be 1 to 64 characters",
	ErrCodeInvalidMove:    "invalid move",
	ErrCodeNoSelection:    "select cards first",
	ErrCodeActionPending:  "waiting for the server",
	ErrCodeInvalidCard:    "unknown card",
	ErrCodeUnexpected:     "event not expected now",
}
