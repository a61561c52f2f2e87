//go:build !production

package testutil

import (
	"context"
	"sync"
)

// Profile is an in-memory model.Profile.
type Profile struct {
	mu         sync.Mutex
	PlayerName string
	ID         string
	SetErr     error
}

// NewProfile returns a profile named name with a fixed device id.
func NewProfile(name string) *Profile {
	return &Profile{PlayerName: name, ID: "device-1"}
}

func (p *Profile) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.PlayerName
}

func (p *Profile) HasName() bool { return p.Name() != "" }

func (p *Profile) DeviceID() string { return p.ID }

func (p *Profile) SetName(_ context.Context, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SetErr != nil {
		return p.SetErr
	}
	p.PlayerName = name
	return nil
}
