package producer

import (
	"context"

	telemetryv1 "teamspace/backend/api/generated/telemetry/v1"
	"teamspace/backend/internal/telemetry"
)

// Multi fans each event out to an optional primary producer (Kafka) and any
// additional emitters (e.g. the OTel log adapter). Close closes the primary
// producer only; emitters are owned by their providers.
type Multi struct {
	primary  Producer
	emitters []telemetry.EventEmitter
}

// NewMulti returns a Producer that emits to primary and all emitters.
// primary may be nil (e.g. Kafka unconfigured); events then go to emitters only.
func NewMulti(primary Producer, emitters ...telemetry.EventEmitter) *Multi {
	return &Multi{primary: primary, emitters: emitters}
}

// Emit sends the event to every target. All targets are attempted; the first
// error is returned.
func (m *Multi) Emit(ctx context.Context, event *telemetryv1.TelemetryEvent) error {
	var firstErr error
	if m.primary != nil {
		if err := m.primary.Emit(ctx, event); err != nil {
			firstErr = err
		}
	}
	for _, e := range m.emitters {
		if e == nil {
			continue
		}
		if err := e.Emit(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes the primary producer if set.
func (m *Multi) Close() error {
	if m.primary == nil {
		return nil
	}
	return m.primary.Close()
}
