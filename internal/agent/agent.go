package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
)

// ErrAttestorDown is returned when the initial health check fails; the agent
// refuses to start a loop against an unreachable attestor.
var ErrAttestorDown = errors.New("attestor health check failed")

const defaultInterval = 10 * time.Second

// Config carries the agent's collaborators.
type Config struct {
	Identity  *identity.Identity
	Sensor    domain.SensorSource
	Transport domain.Transport
	Interval  time.Duration
	Logger    *slog.Logger
	Metrics   *Metrics
}

// Agent is the submission loop.
type Agent struct {
	id        *identity.Identity
	sensor    domain.SensorSource
	transport domain.Transport
	interval  time.Duration
	log       *slog.Logger
	metrics   *Metrics
	now       func() time.Time
}

// New builds an agent from cfg, filling in defaults for interval and logger.
func New(cfg Config) *Agent {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Agent{
		id:        cfg.Identity,
		sensor:    cfg.Sensor,
		transport: cfg.Transport,
		interval:  interval,
		log:       log,
		metrics:   cfg.Metrics,
		now:       time.Now,
	}
}

// Run submits readings until ctx is canceled. The first submission happens
// immediately after a passing health check; later ones follow the interval.
func (a *Agent) Run(ctx context.Context) error {
	if !a.transport.Health(ctx) {
		return ErrAttestorDown
	}
	a.log.Info("agent started", "did", a.id.DID().String(), "interval", a.interval.String())

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		a.submitOnce(ctx)
		timer.Reset(a.interval)
	}
}

// submitOnce performs one read-sign-submit cycle. Failures are logged and
// counted, never retried here; retry policy belongs to the transport's
// operator.
func (a *Agent) submitOnce(ctx context.Context) {
	reading, err := a.sensor.Read(ctx)
	if err != nil {
		a.metrics.observe(resultError, 0)
		a.log.Error("sensor read failed", "source", a.sensor.Name(), "err", err.Error())
		return
	}
	reading.TimestampLocal = a.now().Unix()

	env, err := a.id.Sign(reading)
	if err != nil {
		a.metrics.observe(resultError, 0)
		a.log.Error("sign failed", "err", err.Error())
		return
	}

	res, err := a.transport.Submit(ctx, env)
	switch {
	case err != nil:
		a.metrics.observe(resultError, 0)
		a.log.Error("submit failed", "err", err.Error())
	case !res.Success:
		a.metrics.observe(resultRejected, 0)
		a.log.Warn("submission rejected", "attestor_error", res.Error)
	default:
		a.metrics.observe(resultOK, env.Timestamp)
		a.log.Info("submission accepted",
			"tx_hash", res.TxHash,
			"block_number", res.BlockNumber,
			"temperature", reading.Temperature,
			"humidity", reading.Humidity,
		)
	}
}
