package identity_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/jws"
	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
)

// vectors.json pins key-to-identifier pairs that every implementation of the
// scheme must reproduce exactly.
type vector struct {
	Name          string     `json:"name"`
	PrivateKeyHex string     `json:"private_key"`
	DID           domain.DID `json:"did"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "vectors.json"))
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	var vs []vector
	if err := json.Unmarshal(data, &vs); err != nil {
		t.Fatalf("parse vectors: %v", err)
	}
	if len(vs) == 0 {
		t.Fatal("no vectors loaded")
	}
	return vs
}

func TestDerivationVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			id, err := identitysvc.FromHex(v.PrivateKeyHex)
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			if id.DID() != v.DID {
				t.Fatalf("identifier mismatch:\n got  %s\n want %s", id.DID(), v.DID)
			}
		})
	}
}

func TestMnemonicRoundTrip(t *testing.T) {
	id, err := identitysvc.New()
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	phrase, err := id.Mnemonic()
	if err != nil {
		t.Fatalf("export mnemonic: %v", err)
	}
	recovered, err := identitysvc.FromMnemonic(phrase)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if recovered.DID() != id.DID() {
		t.Fatalf("recovered identity differs: %s vs %s", recovered.DID(), id.DID())
	}
}

func TestFromMnemonicRejectsGarbage(t *testing.T) {
	if _, err := identitysvc.FromMnemonic("not a valid phrase at all"); !errors.Is(err, domain.ErrInvalidKeyFormat) {
		t.Fatalf("want ErrInvalidKeyFormat, got %v", err)
	}
}

func TestSignEnvelope(t *testing.T) {
	id, err := identitysvc.FromHex("c85ef7d79691fe79573b1a7064c19c1a9819ebdbd1faaab1a8ec92344438aaf4")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	reading := domain.Reading{Temperature: 23.5, Humidity: 60.1, Pressure: 1012.9, Source: "test"}
	before := time.Now().Unix()
	env, err := id.Sign(reading)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	after := time.Now().Unix()

	if env.DID != id.DID() {
		t.Fatalf("envelope did mismatch: %s", env.DID)
	}
	if env.Timestamp < before || env.Timestamp > after {
		t.Fatalf("timestamp %d outside [%d, %d]", env.Timestamp, before, after)
	}
	if err := jws.Verify(env.Signature, env.DID); err != nil {
		t.Fatalf("envelope signature does not verify: %v", err)
	}

	// The envelope payload must be the exact bytes that were signed.
	signed, err := jws.Payload(env.Signature)
	if err != nil {
		t.Fatalf("extract signed payload: %v", err)
	}
	if string(signed) != string(env.Payload) {
		t.Fatalf("payload differs from signed bytes:\n env   %s\n token %s", env.Payload, signed)
	}

	var got domain.Reading
	if err := json.Unmarshal(env.Payload, &got); err != nil {
		t.Fatalf("payload is not a reading: %v", err)
	}
	if got != reading {
		t.Fatalf("payload round trip mismatch: %+v", got)
	}
}

func TestSignRawPreservesBytes(t *testing.T) {
	id, err := identitysvc.New()
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	raw := json.RawMessage(`{"z": 1, "a": 2}`)
	env, err := id.SignRaw(raw)
	if err != nil {
		t.Fatalf("sign raw: %v", err)
	}
	if string(env.Payload) != string(raw) {
		t.Fatalf("raw payload altered: %s", env.Payload)
	}
	if err := jws.Verify(env.Signature, env.DID); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestRecordCarriesBareHex(t *testing.T) {
	id, err := identitysvc.FromHex("0x0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	rec := id.Record()
	if rec.PrivateKeyHex != "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20" {
		t.Fatalf("record hex carries prefix or wrong bytes: %s", rec.PrivateKeyHex)
	}
	if rec.DID != id.DID() {
		t.Fatalf("record did mismatch: %s", rec.DID)
	}
}
