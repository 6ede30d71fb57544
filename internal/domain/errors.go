package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyFormat is returned when an imported private key has the
	// wrong length, non-hex characters, or a scalar of 0 or >= the curve order.
	ErrInvalidKeyFormat = errors.New("invalid private key format")

	// ErrEncoding is returned for malformed intermediate buffers, such as a
	// DER signature that cannot be normalized to the fixed 64-byte form.
	ErrEncoding = errors.New("malformed encoding")

	// ErrSigningFailure is returned when the underlying signing primitive
	// rejects the key or hash.
	ErrSigningFailure = errors.New("signing failed")

	// ErrPersistence is returned when the identity record is missing,
	// malformed, or lacks a usable private_key field.
	ErrPersistence = errors.New("identity record unavailable")

	// ErrRecordMismatch is the corruption signal raised when the stored did
	// does not match the one re-derived from the stored private key.
	ErrRecordMismatch = fmt.Errorf("%w: stored did does not match derived did", ErrPersistence)

	// ErrRecordNotFound distinguishes an absent record file from a corrupted
	// one, so callers may safely create a fresh identity only in the former
	// case.
	ErrRecordNotFound = fmt.Errorf("%w: record file not found", ErrPersistence)
)
