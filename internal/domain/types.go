package domain

import "encoding/json"

// PrivateKey is a raw secp256k1 scalar in [1, n-1]. It is never transmitted
// and is persisted only inside the local identity record.
type PrivateKey [32]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is a SEC1-compressed secp256k1 point: one parity byte followed
// by the 32-byte x-coordinate.
type PublicKey [33]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// DID is a did:key identifier derived from a public key. It is recomputed
// from key material on load and never trusted verbatim from storage.
type DID string

// String returns the string form of the identifier.
func (d DID) String() string { return string(d) }

// Record is the persisted identity file:
//
//	{"private_key": "<64 hex chars>", "did": "<identifier>"}
//
// The did field is a convenience copy; loaders must re-derive it from
// private_key and treat a mismatch as corruption.
type Record struct {
	PrivateKeyHex string `json:"private_key"`
	DID           DID    `json:"did"`
}

// Envelope is the submission envelope consumed by the attestor transport.
// Payload carries the exact canonical bytes that were signed, so the object
// the verifier sees is byte-identical to the second JWS segment.
type Envelope struct {
	DID       DID             `json:"did"`
	Payload   json.RawMessage `json:"payload"`
	Signature string          `json:"signature"`
	Timestamp int64           `json:"timestamp"`
}

// SubmitResult is the attestor's answer to a submission.
type SubmitResult struct {
	Success     bool   `json:"success"`
	TxHash      string `json:"txHash,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Reading is one telemetry sample. Field order matters: the struct is
// serialized in declaration order and those bytes are what get signed.
type Reading struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	Pressure       float64 `json:"pressure"`
	Source         string  `json:"source"`
	TimestampLocal int64   `json:"timestamp_local,omitempty"`
}
