package telemetry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// ErrSourceUnavailable is returned when the requested telemetry source
// cannot be opened on this host.
var ErrSourceUnavailable = errors.New("telemetry source unavailable")

// Source kinds accepted by Init.
const (
	KindMock = "mock"
)

// Init opens the named telemetry source and returns a capability handle.
func Init(kind string) (domain.SensorSource, error) {
	switch kind {
	case KindMock, "":
		return NewMockSource(), nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrSourceUnavailable, kind)
	}
}

// MockSource produces plausible environmental readings with bounded random
// variation, for hosts without real sensor hardware.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockSource returns a mock source seeded from the wall clock.
func NewMockSource() *MockSource {
	return &MockSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Name identifies the source inside each reading.
func (m *MockSource) Name() string { return "mock-sensor" }

// Read returns one synthetic reading.
func (m *MockSource) Read(_ context.Context) (domain.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	jitter := func(span float64) float64 {
		return (m.rng.Float64()*2 - 1) * span
	}
	return domain.Reading{
		Temperature: round2(23.0 + jitter(2)),
		Humidity:    round2(65.0 + jitter(5)),
		Pressure:    round2(1013.0 + jitter(5)),
		Source:      m.Name(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compile-time assertion that MockSource implements domain.SensorSource.
var _ domain.SensorSource = (*MockSource)(nil)
