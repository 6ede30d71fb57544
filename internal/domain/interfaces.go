package domain

import "context"

// RecordStore persists the device identity record.
type RecordStore interface {
	Save(rec Record) error
	Load() (Record, error)
}

// Transport submits signed envelopes to an attestor and reports its health.
// Retry and backoff policy live behind this interface, never in the core.
type Transport interface {
	Submit(ctx context.Context, env Envelope) (SubmitResult, error)
	Health(ctx context.Context) bool
}

// SensorSource is a capability handle over one telemetry source. Handles are
// obtained through an explicit init call, not hidden process-wide state.
type SensorSource interface {
	Name() string
	Read(ctx context.Context) (Reading, error)
}
