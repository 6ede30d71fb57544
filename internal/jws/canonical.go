package jws

import (
	"encoding/json"
	"fmt"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// Canonical returns the compact JSON bytes of v: minimal separators and no
// extraneous whitespace. A json.RawMessage passes through verbatim after
// validation, letting callers sign pre-serialized bytes they control.
//
// Ordering caveat: struct fields serialize in declaration order and map keys
// in sorted order, so this implementation is internally deterministic, but
// the format itself does not pin a cross-implementation key ordering. Two
// conforming implementations that present the same logical object in
// different orders sign different bytes; callers that need byte-agreed
// payloads across implementations should pass raw bytes.
func Canonical(v any) ([]byte, error) {
	if raw, ok := v.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("%w: payload is not valid JSON", domain.ErrEncoding)
		}
		return raw, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return b, nil
}
