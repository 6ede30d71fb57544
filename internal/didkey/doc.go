// Package didkey frames secp256k1 public keys as did:key identifiers.
//
// The encoded form is did:key:z<base58btc(0xE7 0x01 || pubkey)>: a 2-byte
// multicodec tag for "secp256k1 public key", the 33-byte compressed point,
// base58btc text, and the multibase 'z' marker. The identifier is a pure
// function of the public key, so independent implementations given the same
// private key must produce byte-identical strings.
package didkey
