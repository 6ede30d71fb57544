package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/util/memzero"
)

const privateKeyHexLen = 2 * len(domain.PrivateKey{})

// Generate draws a fresh private key from the platform RNG. The scalar is
// guaranteed to lie in [1, n-1].
func Generate() (domain.PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return domain.PrivateKey{}, fmt.Errorf("generate private key: %w", err)
	}
	var k domain.PrivateKey
	raw := priv.Serialize()
	copy(k[:], raw)
	memzero.Zero(raw)
	priv.Zero()
	return k, nil
}

// ParseHex imports a private key from its hex form. An optional 0x prefix is
// accepted; beyond that the input must be exactly 64 hex characters encoding
// a scalar in [1, n-1].
func ParseHex(s string) (domain.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != privateKeyHexLen {
		return domain.PrivateKey{}, fmt.Errorf("%w: want %d hex characters, got %d",
			domain.ErrInvalidKeyFormat, privateKeyHexLen, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return domain.PrivateKey{}, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}
	var k domain.PrivateKey
	copy(k[:], raw)
	memzero.Zero(raw)

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetBytes((*[32]byte)(&k))
	zero := scalar.IsZero()
	scalar.Zero()
	if overflow != 0 {
		return domain.PrivateKey{}, fmt.Errorf("%w: scalar not below the curve order", domain.ErrInvalidKeyFormat)
	}
	if zero {
		return domain.PrivateKey{}, fmt.Errorf("%w: scalar is zero", domain.ErrInvalidKeyFormat)
	}
	return k, nil
}

// PublicKey derives the SEC1-compressed public key for k by scalar
// multiplication with the curve base point.
func PublicKey(k domain.PrivateKey) domain.PublicKey {
	priv := secp256k1.PrivKeyFromBytes(k[:])
	var pub domain.PublicKey
	copy(pub[:], priv.PubKey().SerializeCompressed())
	priv.Zero()
	return pub
}

// SignHash produces an ECDSA signature over a 32-byte hash and returns it in
// the signer's native DER encoding. No low-S or fixed-width normalization
// happens here.
func SignHash(k domain.PrivateKey, hash []byte) ([]byte, error) {
	if len(hash) != sha256.Size {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", domain.ErrSigningFailure, sha256.Size, len(hash))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetBytes((*[32]byte)(&k)); overflow != 0 || scalar.IsZero() {
		scalar.Zero()
		return nil, fmt.Errorf("%w: private key out of range", domain.ErrSigningFailure)
	}
	priv := secp256k1.NewPrivateKey(&scalar)
	sig := secpecdsa.Sign(priv, hash)
	priv.Zero()
	scalar.Zero()
	return sig.Serialize(), nil
}

// VerifyRaw reports whether a fixed-width 64-byte r||s signature over hash
// verifies under pub.
func VerifyRaw(pub domain.PublicKey, hash, sig64 []byte) bool {
	if len(sig64) != 64 || len(hash) != sha256.Size {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig64[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig64[32:]); overflow {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}
	pubKey, err := secp256k1.ParsePubKey(pub[:])
	if err != nil {
		return false
	}
	return secpecdsa.NewSignature(&r, &s).Verify(hash, pubKey)
}
