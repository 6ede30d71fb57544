// Package telemetry provides sensor sources for the submission agent.
//
// Sources are capability handles returned by an explicit Init call; there is
// no lazily constructed process-wide sensor. A source that cannot be opened
// reports ErrSourceUnavailable instead of degrading silently.
package telemetry
