package stream

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/spellforge/client-go/stream"

// managerMetrics holds the manager's metric instruments. They are no-op
// unless the embedding application installs a meter provider.
type managerMetrics struct {
	eventsTotal    metric.Int64Counter
	decodeFailures metric.Int64Counter
	unknownEvents  metric.Int64Counter
	reconnects     metric.Int64Counter
}

func newManagerMetrics() (*managerMetrics, error) {
	meter := otel.Meter(instrumentationName)

	eventsTotal, err := meter.Int64Counter("stream.events.total",
		metric.WithDescription("Total events folded into the stream state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.events.total counter: %w", err)
	}

	decodeFailures, err := meter.Int64Counter("stream.events.decode_failures",
		metric.WithDescription("Events dropped because their payload was malformed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.events.decode_failures counter: %w", err)
	}

	unknownEvents, err := meter.Int64Counter("stream.events.unknown",
		metric.WithDescription("Events dropped because their type is not registered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.events.unknown counter: %w", err)
	}

	reconnects, err := meter.Int64Counter("stream.reconnects.total",
		metric.WithDescription("Reconnect attempts scheduled after transport failures"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.reconnects.total counter: %w", err)
	}

	return &managerMetrics{
		eventsTotal:    eventsTotal,
		decodeFailures: decodeFailures,
		unknownEvents:  unknownEvents,
		reconnects:     reconnects,
	}, nil
}

func (m *managerMetrics) recordEvent(ctx context.Context, eventType string) {
	m.eventsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

func (m *managerMetrics) recordDecodeFailure(ctx context.Context, eventType string) {
	m.decodeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

func (m *managerMetrics) recordUnknown(ctx context.Context, eventType string) {
	m.unknownEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

func (m *managerMetrics) recordReconnect(ctx context.Context) {
	m.reconnects.Add(ctx, 1)
}
