// Package jws builds and checks the compact signed structure: three
// dot-joined base64url segments (no padding) carrying a canonical-JSON
// header, a canonical-JSON payload, and a fixed-width 64-byte ECDSA
// signature.
//
// The header is always {"alg":"ES256K","typ":"JWT"}. The signing input is
// the ASCII bytes of headerB64 + "." + payloadB64, hashed with SHA-256 and
// signed over secp256k1. The signer's variable-length DER output is
// normalized to exactly 32 bytes of r followed by 32 bytes of s.
package jws
