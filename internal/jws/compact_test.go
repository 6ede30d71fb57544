package jws

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/crypto"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/didkey"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

func testKey(t *testing.T) domain.PrivateKey {
	t.Helper()
	k, err := crypto.ParseHex("0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20")
	if err != nil {
		t.Fatalf("parse fixture key: %v", err)
	}
	return k
}

func TestSignStructure(t *testing.T) {
	payload := []byte(`{"temperature":23.5}`)
	token, err := Sign(payload, testKey(t))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("want 3 segments, got %d", len(parts))
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("decode header segment: %v", err)
	}
	const wantHeader = `{"alg":"ES256K","typ":"JWT"}`
	if string(headerJSON) != wantHeader {
		t.Fatalf("header mismatch:\n got  %s\n want %s", headerJSON, wantHeader)
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload segment: %v", err)
	}
	if !bytes.Equal(payloadBytes, payload) {
		t.Fatalf("payload segment altered: got %s", payloadBytes)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decode signature segment: %v", err)
	}
	if len(sig) != rawSignatureLen {
		t.Fatalf("signature is %d bytes, want %d", len(sig), rawSignatureLen)
	}
	if strings.ContainsRune(token, '=') {
		t.Fatalf("token carries base64 padding: %s", token)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	did := didkey.FromPublicKey(crypto.PublicKey(key))

	token, err := Sign([]byte(`{"n":1}`), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := Verify(token, did); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	key := testKey(t)
	did := didkey.FromPublicKey(crypto.PublicKey(key))

	token, err := Sign([]byte(`{"n":1}`), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	parts := strings.Split(token, ".")

	otherPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"n":2}`))
	tamperedPayload := parts[0] + "." + otherPayload + "." + parts[2]
	if err := Verify(tamperedPayload, did); !errors.Is(err, ErrVerification) {
		t.Fatalf("tampered payload: want ErrVerification, got %v", err)
	}

	sig, _ := base64.RawURLEncoding.DecodeString(parts[2])
	sig[10] ^= 0x01
	tamperedSig := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(sig)
	if err := Verify(tamperedSig, did); !errors.Is(err, ErrVerification) {
		t.Fatalf("tampered signature: want ErrVerification, got %v", err)
	}

	if err := Verify(parts[0]+"."+parts[1], did); !errors.Is(err, domain.ErrEncoding) {
		t.Fatalf("two segments: want ErrEncoding, got %v", err)
	}

	otherKey, err := crypto.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	otherDID := didkey.FromPublicKey(crypto.PublicKey(otherKey))
	if err := Verify(token, otherDID); !errors.Is(err, ErrVerification) {
		t.Fatalf("wrong key: want ErrVerification, got %v", err)
	}
}

func TestRawSignatureFromDER(t *testing.T) {
	mustHex := func(s string) []byte {
		b, err := hex.DecodeString(s)
		if err != nil {
			t.Fatalf("fixture hex: %v", err)
		}
		return b
	}

	t.Run("short components are left padded", func(t *testing.T) {
		// SEQUENCE { INTEGER 0x07, INTEGER 0x0203 }
		raw, err := rawSignatureFromDER(mustHex("300702010702020203"))
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if len(raw) != rawSignatureLen {
			t.Fatalf("got %d bytes, want %d", len(raw), rawSignatureLen)
		}
		if raw[31] != 0x07 || !bytes.Equal(raw[:31], make([]byte, 31)) {
			t.Fatalf("r not right-aligned: %x", raw[:32])
		}
		if raw[62] != 0x02 || raw[63] != 0x03 || !bytes.Equal(raw[32:62], make([]byte, 30)) {
			t.Fatalf("s not right-aligned: %x", raw[32:])
		}
	})

	t.Run("sign padding byte is stripped", func(t *testing.T) {
		// r is 33 bytes with a leading 0x00 because its top bit is set.
		rValue := "ff" + strings.Repeat("00", 30) + "aa"
		raw, err := rawSignatureFromDER(mustHex("30260221" + "00" + rValue + "020107"))
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if raw[0] != 0xff || raw[31] != 0xaa {
			t.Fatalf("padded component mangled: %x", raw[:32])
		}
	})

	rejects := []struct {
		name string
		der  string
	}{
		{"not a sequence", "310702010702020203"},
		{"long-form sequence length", "308107020107020202030000000000"},
		{"long-form integer length", "3009028101070202020300"},
		{"sequence length mismatch", "300902010702020203"},
		{"trailing bytes", "30080201070202020300"},
		{"component too wide", "30270222" + "0100ff" + strings.Repeat("00", 30) + "aa" + "020107"},
		{"truncated", "3007020107"},
	}
	for _, tc := range rejects {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := rawSignatureFromDER(mustHex(tc.der)); !errors.Is(err, domain.ErrEncoding) {
				t.Fatalf("want ErrEncoding, got %v", err)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	t.Run("map keys sort", func(t *testing.T) {
		b, err := Canonical(map[string]int{"b": 2, "a": 1})
		if err != nil {
			t.Fatalf("canonical: %v", err)
		}
		if string(b) != `{"a":1,"b":2}` {
			t.Fatalf("unexpected serialization: %s", b)
		}
	})

	t.Run("raw message passes through verbatim", func(t *testing.T) {
		in := []byte(`{"z": 1, "a": 2}`)
		b, err := Canonical(json.RawMessage(in))
		if err != nil {
			t.Fatalf("canonical: %v", err)
		}
		if !bytes.Equal(b, in) {
			t.Fatalf("raw bytes altered: %s", b)
		}
	})

	t.Run("invalid raw message rejected", func(t *testing.T) {
		if _, err := Canonical(json.RawMessage(`{`)); !errors.Is(err, domain.ErrEncoding) {
			t.Fatalf("want ErrEncoding, got %v", err)
		}
	})
}
