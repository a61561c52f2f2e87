//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// MockSender is a mock action sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Trade(cards []string, ack func(protocol.AckPayload)) error {
	args := m.Called(cards, ack)
	return args.Error(0)
}

func (m *MockSender) PlayCard(card string, ack func(protocol.AckPayload)) error {
	args := m.Called(card, ack)
	return args.Error(0)
}

// CaptureAck returns a Run hook storing the ack callback in *dst.
func CaptureAck(dst *func(protocol.AckPayload)) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*dst = args.Get(1).(func(protocol.AckPayload))
	}
}
