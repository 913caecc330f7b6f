package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and logs the duration of every ended span.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs "<path> [<result>] took <duration>".
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	subject := s.Name()
	result := ""
	for _, kv := range s.Attributes() {
		switch string(kv.Key) {
		case domain.AttrPath:
			subject = kv.Value.Emit()
		case domain.AttrResult:
			result = kv.Value.Emit()
		}
	}
	if result == "" && s.Status().Code == codes.Error {
		result = "failed"
	}

	took := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if result != "" {
		b.logger.Info(fmt.Sprintf("%s [%s] took %s", subject, result, took))
		return
	}
	b.logger.Info(fmt.Sprintf("%s took %s", subject, took))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
