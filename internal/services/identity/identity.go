package identity

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tyler-smith/go-bip39"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/crypto"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/didkey"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/jws"
)

// Identity is a single static device key with its derived public half and
// did:key identifier. Values are immutable after construction.
type Identity struct {
	priv domain.PrivateKey
	pub  domain.PublicKey
	did  domain.DID
}

// New generates a fresh identity from the platform RNG.
func New() (*Identity, error) {
	k, err := crypto.Generate()
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(k), nil
}

// FromPrivateKey derives the public key and identifier for an already
// validated private key.
func FromPrivateKey(k domain.PrivateKey) *Identity {
	pub := crypto.PublicKey(k)
	return &Identity{
		priv: k,
		pub:  pub,
		did:  didkey.FromPublicKey(pub),
	}
}

// FromHex imports a private key from hex (optional 0x prefix, 64 hex chars).
func FromHex(s string) (*Identity, error) {
	k, err := crypto.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(k), nil
}

// FromMnemonic recovers an identity from its 24-word backup phrase. The
// phrase is a reversible encoding of the 32-byte private key, so the
// recovered identifier equals the original.
func FromMnemonic(words string) (*Identity, error) {
	entropy, err := bip39.EntropyFromMnemonic(strings.TrimSpace(words))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}
	if len(entropy) != len(domain.PrivateKey{}) {
		return nil, fmt.Errorf("%w: mnemonic encodes %d bytes, want %d",
			domain.ErrInvalidKeyFormat, len(entropy), len(domain.PrivateKey{}))
	}
	return FromHex(hex.EncodeToString(entropy))
}

// DID returns the did:key identifier.
func (id *Identity) DID() domain.DID { return id.did }

// PublicKey returns the SEC1-compressed public key.
func (id *Identity) PublicKey() domain.PublicKey { return id.pub }

// Mnemonic exports the private key as a 24-word backup phrase.
func (id *Identity) Mnemonic() (string, error) {
	return bip39.NewMnemonic(id.priv[:])
}

// Record returns the persistable form of the identity. PrivateKeyHex carries
// no 0x prefix.
func (id *Identity) Record() domain.Record {
	return domain.Record{
		PrivateKeyHex: hex.EncodeToString(id.priv[:]),
		DID:           id.did,
	}
}

// Sign serializes payload to its canonical bytes, signs them, and returns
// the submission envelope. The envelope carries the signed bytes themselves
// as the payload, plus the wall-clock timestamp in whole seconds.
func (id *Identity) Sign(payload any) (domain.Envelope, error) {
	canonical, err := jws.Canonical(payload)
	if err != nil {
		return domain.Envelope{}, err
	}
	return id.SignRaw(canonical)
}

// SignRaw signs caller-supplied pre-serialized JSON bytes verbatim. This is
// the escape hatch for callers that need byte-agreed payloads across
// implementations regardless of key-ordering conventions.
func (id *Identity) SignRaw(payload json.RawMessage) (domain.Envelope, error) {
	canonical, err := jws.Canonical(payload)
	if err != nil {
		return domain.Envelope{}, err
	}
	token, err := jws.Sign(canonical, id.priv)
	if err != nil {
		return domain.Envelope{}, err
	}
	return domain.Envelope{
		DID:       id.did,
		Payload:   canonical,
		Signature: token,
		Timestamp: time.Now().Unix(),
	}, nil
}
