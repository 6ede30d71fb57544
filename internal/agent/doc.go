// Package agent runs the continuous sign-and-submit loop: read a telemetry
// sample, stamp it, sign it with the device identity, and hand the envelope
// to the attestor transport on a fixed interval.
package agent
