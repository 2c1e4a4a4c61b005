package telemetry

import (
	"context"
	"log"
	"time"

	telemetryv1 "teamspace/backend/api/generated/telemetry/v1"
)

// emitTimeout bounds a single background emit.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration is how long the server waits after GracefulStop
// before tearing down telemetry, giving in-flight background emits time to
// finish. Must be >= emitTimeout.
const ShutdownDrainDuration = emitTimeout

// EmitAsync sends the event on a background goroutine so request handling is
// never blocked on the telemetry pipeline. The emit runs detached from the
// request context; cancelling the RPC does not abort it. Errors are logged,
// nothing more. A nil emitter or event is a no-op.
func EmitAsync(emitter EventEmitter, event *telemetryv1.TelemetryEvent) {
	if emitter == nil || event == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := emitter.Emit(ctx, event); err != nil {
			log.Printf("telemetry: async emit failed: %v", err)
		}
	}()
}
