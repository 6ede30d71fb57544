package identity_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/store"
)

func newService(t *testing.T) (*identitysvc.Service, *store.RecordFileStore) {
	t.Helper()
	fs := store.NewRecordFileStore(filepath.Join(t.TempDir(), "device.json"))
	return identitysvc.NewService(fs), fs
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	svc, _ := newService(t)

	id, err := identitysvc.New()
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	if err := svc.Save(id); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := svc.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DID() != id.DID() {
		t.Fatalf("loaded identity differs: %s vs %s", loaded.DID(), id.DID())
	}
}

func TestServiceLoadDetectsMismatch(t *testing.T) {
	svc, fs := newService(t)

	id, err := identitysvc.New()
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	rec := id.Record()
	rec.DID = "did:key:zQ3shWLyu8mc4GLnyzrxvWj9kJPijwGbjdrr3pZ8hacUYxawh"
	if rec.DID == id.DID() {
		t.Skip("generated key collides with fixture")
	}
	if err := fs.Save(rec); err != nil {
		t.Fatalf("save tampered record: %v", err)
	}

	if _, err := svc.Load(); !errors.Is(err, domain.ErrRecordMismatch) {
		t.Fatalf("want ErrRecordMismatch, got %v", err)
	}
}

func TestServiceLoadMissingFile(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Load()
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("ErrRecordNotFound must also match ErrPersistence, got %v", err)
	}
}

func TestServiceLoadOrCreate(t *testing.T) {
	svc, _ := newService(t)

	first, created, err := svc.LoadOrCreate()
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !created {
		t.Fatal("first call did not create an identity")
	}

	second, created, err := svc.LoadOrCreate()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if created {
		t.Fatal("second call created a fresh identity over an existing one")
	}
	if second.DID() != first.DID() {
		t.Fatalf("identity not stable across calls: %s vs %s", second.DID(), first.DID())
	}
}

func TestServiceLoadOrCreateRefusesCorruptRecord(t *testing.T) {
	svc, fs := newService(t)

	if err := fs.Save(domain.Record{PrivateKeyHex: "not-hex", DID: "did:key:zbogus"}); err != nil {
		t.Fatalf("save corrupt record: %v", err)
	}
	if _, _, err := svc.LoadOrCreate(); err == nil {
		t.Fatal("corrupt record was silently replaced")
	}
}
