package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// RecordFileStore persists the identity record at a fixed path.
//
// With an empty passphrase the file holds the plaintext wire format
// {"private_key": "...", "did": "..."}; with a passphrase the same JSON
// bytes are sealed in the keystore envelope.
type RecordFileStore struct {
	path       string
	passphrase string
	mu         sync.Mutex
}

// NewRecordFileStore returns a plaintext record store rooted at path.
func NewRecordFileStore(path string) *RecordFileStore {
	return &RecordFileStore{path: path}
}

// NewEncryptedRecordFileStore returns a record store that seals the record
// with the given passphrase.
func NewEncryptedRecordFileStore(path, passphrase string) *RecordFileStore {
	return &RecordFileStore{path: path, passphrase: passphrase}
}

// Save writes the record to disk with owner-only permissions.
func (s *RecordFileStore) Save(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if s.passphrase != "" {
		N, r, p := scryptParamsDefault()
		if raw, err = encrypt(s.passphrase, raw, N, r, p); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
	}
	if err := writeFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Load reads the record back. A missing file, malformed JSON, or an absent
// private_key field all surface as ErrPersistence.
func (s *RecordFileStore) Load() (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Record{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, s.path)
		}
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if s.passphrase != "" {
		if raw, err = decrypt(s.passphrase, raw); err != nil {
			return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
	}
	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if rec.PrivateKeyHex == "" {
		return domain.Record{}, fmt.Errorf("%w: private_key field is missing", domain.ErrPersistence)
	}
	return rec, nil
}

// Exists reports whether a record file is present at the store's path.
func (s *RecordFileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Compile-time assertion that RecordFileStore implements domain.RecordStore.
var _ domain.RecordStore = (*RecordFileStore)(nil)
