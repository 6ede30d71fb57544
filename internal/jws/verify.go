package jws

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/crypto"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/didkey"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// ErrVerification is returned when a structurally valid signed structure
// fails signature verification.
var ErrVerification = errors.New("jws signature verification failed")

// Verify checks a compact signed structure against the holder of did.
// Verification lives with collaborators (attestors, tests), not the signing
// core, but shares this package so the segment rules stay in one place.
func Verify(token string, did domain.DID) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: want 3 segments, got %d", domain.ErrEncoding, len(parts))
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("%w: signature segment: %v", domain.ErrEncoding, err)
	}
	if len(sig) != rawSignatureLen {
		return fmt.Errorf("%w: signature is %d bytes, want %d", domain.ErrEncoding, len(sig), rawSignatureLen)
	}
	pub, err := didkey.Decode(did)
	if err != nil {
		return err
	}
	hash := sha256.Sum256([]byte(parts[0] + "." + parts[1]))
	if !crypto.VerifyRaw(pub, hash[:], sig) {
		return ErrVerification
	}
	return nil
}

// Payload returns the decoded payload segment of a compact signed structure.
func Payload(token string) ([]byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 3 segments, got %d", domain.ErrEncoding, len(parts))
	}
	b, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment: %v", domain.ErrEncoding, err)
	}
	return b, nil
}
