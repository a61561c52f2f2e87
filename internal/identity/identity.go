package identity

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/palemoky/boompa-hearts/internal/apperrors"
)

const (
	keyName     = "name"
	keyDeviceID = "uid"

	// MaxNameLength is the longest accepted display name, in characters.
	MaxNameLength = 64
)

// ValidName reports whether name can be used as a display name.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= MaxNameLength
}

// Identity is the local player's persisted name and device id.
type Identity struct {
	store    Store
	name     string
	deviceID string
}

// Load reads the identity from store, generating and saving a device id the
// first time. A missing or invalid stored name is left empty.
func Load(ctx context.Context, store Store) (*Identity, error) {
	id := &Identity{store: store}

	name, err := store.Get(ctx, keyName)
	switch {
	case err == nil:
		if ValidName(name) {
			id.name = name
		}
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	uid, err := store.Get(ctx, keyDeviceID)
	switch {
	case err == nil && uid != "":
		id.deviceID = uid
	case err == nil || errors.Is(err, ErrNotFound):
		id.deviceID = uuid.NewString()
		if err := store.Set(ctx, keyDeviceID, id.deviceID); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return id, nil
}

// Name returns the stored display name, empty when none is set.
func (id *Identity) Name() string { return id.name }

// HasName reports whether a usable name is stored.
func (id *Identity) HasName() bool { return id.name != "" }

// DeviceID returns the id the server uses to recognise this client on rejoin.
func (id *Identity) DeviceID() string { return id.deviceID }

// SetName validates and persists a new display name.
func (id *Identity) SetName(ctx context.Context, name string) error {
	if !ValidName(name) {
		return apperrors.ErrInvalidName
	}
	if err := id.store.Set(ctx, keyName, name); err != nil {
		return err
	}
	id.name = name
	return nil
}
