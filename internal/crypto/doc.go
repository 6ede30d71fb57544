// Package crypto exposes the secp256k1 key material primitives.
//
// Contents
//
//   - Private key generation and hex import with range validation
//     (Generate, ParseHex)
//   - SEC1-compressed public key derivation (PublicKey)
//   - Raw ECDSA signing over a 32-byte hash, returned in the signer's
//     native DER encoding (SignHash)
//   - Verification of fixed-width 64-byte r||s signatures (VerifyRaw)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. SignHash deliberately does not normalize
// the signature; the compact assembler in internal/jws owns the conversion
// to the fixed 64-byte wire form.
package crypto
