package didkey

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// prefix is the did:key scheme plus the multibase marker for base58btc.
const prefix = "did:key:z"

// multicodecTag identifies "secp256k1-pub" in the multicodec registry.
var multicodecTag = []byte{0xe7, 0x01}

// taggedLen is the framed key length: 2-byte tag + 33-byte compressed point.
const taggedLen = 35

// FromPublicKey encodes a compressed public key as a did:key identifier.
func FromPublicKey(pub domain.PublicKey) domain.DID {
	buf := make([]byte, 0, taggedLen)
	buf = append(buf, multicodecTag...)
	buf = append(buf, pub[:]...)
	return domain.DID(prefix + base58.Encode(buf))
}

// Decode strips the did:key framing and returns the compressed public key.
// It rejects identifiers that do not carry the secp256k1 multicodec tag.
func Decode(did domain.DID) (domain.PublicKey, error) {
	s := did.String()
	if !strings.HasPrefix(s, prefix) {
		return domain.PublicKey{}, fmt.Errorf("%w: missing %q prefix", domain.ErrEncoding, prefix)
	}
	raw, err := base58.Decode(strings.TrimPrefix(s, prefix))
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	if len(raw) != taggedLen {
		return domain.PublicKey{}, fmt.Errorf("%w: decoded %d bytes, want %d", domain.ErrEncoding, len(raw), taggedLen)
	}
	if raw[0] != multicodecTag[0] || raw[1] != multicodecTag[1] {
		return domain.PublicKey{}, fmt.Errorf("%w: not a secp256k1 did:key", domain.ErrEncoding)
	}
	var pub domain.PublicKey
	copy(pub[:], raw[2:])
	return pub, nil
}
