//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockSounder records sound cues.
type MockSounder struct {
	mock.Mock
}

func (m *MockSounder) Play(name string) {
	m.Called(name)
}
