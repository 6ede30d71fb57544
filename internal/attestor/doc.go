// Package attestor is the HTTP transport collaborator: it submits signed
// envelopes to an attestor service and polls its health endpoint. It owns
// transport-level errors; the identity core never retries.
package attestor
