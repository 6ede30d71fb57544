package identity

import (
	"errors"
	"fmt"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// Service persists identities through a backing record store.
type Service struct {
	store domain.RecordStore
}

// NewService returns an identity service backed by the given store.
func NewService(s domain.RecordStore) *Service { return &Service{store: s} }

// Save writes the identity's record.
func (s *Service) Save(id *Identity) error {
	return s.store.Save(id.Record())
}

// Load reads the record and rebuilds the identity from the stored private
// key. The stored did is never authoritative: it is re-derived, and a
// mismatch is surfaced as corruption rather than ignored.
func (s *Service) Load() (*Identity, error) {
	rec, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	id, err := FromHex(rec.PrivateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: private_key field: %v", domain.ErrPersistence, err)
	}
	if rec.DID != "" && rec.DID != id.DID() {
		return nil, domain.ErrRecordMismatch
	}
	return id, nil
}

// LoadOrCreate returns the stored identity, or generates and persists a new
// one when no record exists yet. created reports which path was taken.
func (s *Service) LoadOrCreate() (id *Identity, created bool, err error) {
	id, err = s.Load()
	if err == nil {
		return id, false, nil
	}
	// Only an absent file warrants a fresh key; a corrupted record must
	// never be silently overwritten.
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, false, err
	}
	id, err = New()
	if err != nil {
		return nil, false, err
	}
	if err := s.Save(id); err != nil {
		return nil, false, err
	}
	return id, true, nil
}
