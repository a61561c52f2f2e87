package apperrors

import (
	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// GameError is an error carrying a protocol error code.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Is matches any GameError with the same code, so wrapped copies built
// with New still satisfy errors.Is against the predefined values.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	return ok && t.Code == e.Code
}

// New builds a GameError with the standard message for code.
func New(code int) *GameError {
	msg, ok := protocol.ErrorMessages[code]
	if !ok {
		msg = protocol.ErrorMessages[protocol.ErrCodeUnknown]
	}
	return &GameError{Code: code, Message: msg}
}

// Predefined errors
var (
	ErrNotConnected   = New(protocol.ErrCodeNotConnected)
	ErrSendBufferFull = New(protocol.ErrCodeSendBufferFull)
	ErrInvalidMessage = New(protocol.ErrCodeInvalidMsg)
	ErrGameFull       = New(protocol.ErrCodeGameFull)
	ErrInvalidName    = New(protocol.ErrCodeInvalidName)
	ErrInvalidMove    = New(protocol.ErrCodeInvalidMove)
	ErrNoSelection    = New(protocol.ErrCodeNoSelection)
	ErrActionPending  = New(protocol.ErrCodeActionPending)
	ErrInvalidCard    = New(protocol.ErrCodeInvalidCard)
	ErrUnexpected     = New(protocol.ErrCodeUnexpected)
)
