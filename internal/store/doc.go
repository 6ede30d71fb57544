// Package store provides file-based persistence for the device identity
// record.
//
// The record is serialized as JSON and written atomically (temp file then
// rename) with 0600 permissions, since it carries raw private key material.
// An optional passphrase seals the record in an scrypt+ChaCha20-Poly1305
// envelope; the plaintext JSON form is the cross-implementation wire format.
package store
