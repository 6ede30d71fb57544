package jws

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/crypto"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// header is the fixed first segment of every structure this package signs.
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var fixedHeader = header{Alg: "ES256K", Typ: "JWT"}

// rawSignatureLen is the fixed wire width: 32-byte r || 32-byte s.
const rawSignatureLen = 64

// Sign assembles the compact signed structure over the given canonical
// payload bytes. The payload is used exactly as supplied; callers that start
// from a structured value serialize it with Canonical first.
func Sign(payloadJSON []byte, key domain.PrivateKey) (string, error) {
	headerJSON, err := Canonical(fixedHeader)
	if err != nil {
		return "", err
	}
	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(payloadJSON)
	hash := sha256.Sum256([]byte(signingInput))

	der, err := crypto.SignHash(key, hash[:])
	if err != nil {
		return "", err
	}
	raw, err := rawSignatureFromDER(der)
	if err != nil {
		return "", err
	}
	return signingInput + "." + encodeSegment(raw), nil
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// rawSignatureFromDER converts a DER ECDSA signature into the fixed 64-byte
// r||s form: each component is stripped of leading zero padding beyond 32
// bytes and left-padded with zeros if shorter. Only short-form (sub-128)
// length octets are accepted; long-form lengths are rejected outright rather
// than mis-parsed.
func rawSignatureFromDER(der []byte) ([]byte, error) {
	if len(der) < 8 || der[0] != 0x30 {
		return nil, fmt.Errorf("%w: signature is not a DER sequence", domain.ErrEncoding)
	}
	if der[1] >= 0x80 {
		return nil, fmt.Errorf("%w: long-form DER length", domain.ErrEncoding)
	}
	if int(der[1]) != len(der)-2 {
		return nil, fmt.Errorf("%w: DER sequence length mismatch", domain.ErrEncoding)
	}
	r, rest, err := readDERInt(der[2:])
	if err != nil {
		return nil, err
	}
	s, rest, err := readDERInt(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing bytes after DER signature", domain.ErrEncoding)
	}

	out := make([]byte, rawSignatureLen)
	if err := putFixedWidth(out[:32], r); err != nil {
		return nil, err
	}
	if err := putFixedWidth(out[32:], s); err != nil {
		return nil, err
	}
	return out, nil
}

// readDERInt consumes one INTEGER element and returns its value bytes and
// the remainder of the buffer.
func readDERInt(b []byte) (value, rest []byte, err error) {
	if len(b) < 2 || b[0] != 0x02 {
		return nil, nil, fmt.Errorf("%w: expected DER integer", domain.ErrEncoding)
	}
	n := b[1]
	if n >= 0x80 {
		return nil, nil, fmt.Errorf("%w: long-form DER length", domain.ErrEncoding)
	}
	if n == 0 || int(n) > len(b)-2 {
		return nil, nil, fmt.Errorf("%w: DER integer length out of bounds", domain.ErrEncoding)
	}
	return b[2 : 2+n], b[2+n:], nil
}

// putFixedWidth writes v right-aligned into dst, dropping leading zero bytes
// that only exist as DER sign padding. dst must already be zeroed.
func putFixedWidth(dst, v []byte) error {
	for len(v) > len(dst) && v[0] == 0x00 {
		v = v[1:]
	}
	if len(v) > len(dst) {
		return fmt.Errorf("%w: signature component exceeds %d bytes", domain.ErrEncoding, len(dst))
	}
	copy(dst[len(dst)-len(v):], v)
	return nil
}
