// Package identity composes key material, did:key encoding, and the compact
// signer into the device identity aggregate.
//
// An Identity is immutable once constructed: the public key and did:key
// identifier are derived eagerly from the private scalar and never mutated.
// The Service adds persistence on top, re-deriving (never trusting) the
// stored identifier on load.
package identity
