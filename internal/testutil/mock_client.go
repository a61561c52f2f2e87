//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/boompa-hearts/internal/protocol"
)

// MockTransport 实现 model.Transport 的 mock
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTransport) Receive() (*protocol.Message, error) {
	args := m.Called()
	msg, _ := args.Get(0).(*protocol.Message)
	return msg, args.Error(1)
}

func (m *MockTransport) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTransport) Close() {
	m.Called()
}

func (m *MockTransport) Join(uid, game, name string, ack func(protocol.AckPayload)) error {
	args := m.Called(uid, game, name, ack)
	return args.Error(0)
}

func (m *MockTransport) Rename(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockTransport) SelectPartner(choice int) error {
	args := m.Called(choice)
	return args.Error(0)
}

func (m *MockTransport) Trade(cards []string, ack func(protocol.AckPayload)) error {
	args := m.Called(cards, ack)
	return args.Error(0)
}

func (m *MockTransport) PlayCard(card string, ack func(protocol.AckPayload)) error {
	args := m.Called(card, ack)
	return args.Error(0)
}

func (m *MockTransport) Refresh(ack func(protocol.AckPayload)) error {
	args := m.Called(ack)
	return args.Error(0)
}

// Call is one request recorded by SimpleTransport.
type Call struct {
	Type    protocol.MessageType
	Payload any
	Ack     func(protocol.AckPayload)
}

// SimpleTransport 简单的 mock 传输，不使用 testify（用于不需要断言的测试）
type SimpleTransport struct {
	mu        sync.Mutex
	Calls     []Call
	Connected bool
}

func (s *SimpleTransport) record(t protocol.MessageType, payload any, ack func(protocol.AckPayload)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, Call{Type: t, Payload: payload, Ack: ack})
	return nil
}

// Last returns the most recent call of type t.
func (s *SimpleTransport) Last(t protocol.MessageType) (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.Calls) - 1; i >= 0; i-- {
		if s.Calls[i].Type == t {
			return s.Calls[i], true
		}
	}
	return Call{}, false
}

func (s *SimpleTransport) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Connected = true
	return nil
}

// Receive blocks forever; tests feed messages to the model directly.
func (s *SimpleTransport) Receive() (*protocol.Message, error) {
	select {}
}

func (s *SimpleTransport) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Connected
}

func (s *SimpleTransport) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Connected = false
}

func (s *SimpleTransport) Join(uid, game, name string, ack func(protocol.AckPayload)) error {
	return s.record(protocol.MsgJoin, protocol.JoinPayload{UID: uid, Game: game, Name: name}, ack)
}

func (s *SimpleTransport) Rename(name string) error {
	return s.record(protocol.MsgRename, protocol.RenamePayload{Name: name}, nil)
}

func (s *SimpleTransport) SelectPartner(choice int) error {
	return s.record(protocol.MsgPartnerSelected, protocol.PartnerSelectedPayload{Partner: choice}, nil)
}

func (s *SimpleTransport) Trade(cards []string, ack func(protocol.AckPayload)) error {
	return s.record(protocol.MsgTrade, protocol.TradePayload{Cards: cards}, ack)
}

func (s *SimpleTransport) PlayCard(card string, ack func(protocol.AckPayload)) error {
	return s.record(protocol.MsgPlayCard, protocol.PlayCardPayload{Card: card}, ack)
}

func (s *SimpleTransport) Refresh(ack func(protocol.AckPayload)) error {
	return s.record(protocol.MsgRefresh, nil, ack)
}
