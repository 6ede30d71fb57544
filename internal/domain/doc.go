// Package domain defines the core data models and interfaces shared across
// the SDK: key material types, the identity record and submission envelope
// wire formats, sentinel errors, and the store, transport, and sensor
// contracts. It contains plain types and contracts only.
package domain
