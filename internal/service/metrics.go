package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/chayanin-dev/chat-relay/pkg/logger"
	"github.com/chayanin-dev/chat-relay/pkg/telemetry"
)

// Call outcomes recorded on the chat call counter
const (
	outcomeOK            = "ok"
	outcomeQuotaExceeded = "quota_exceeded"
	outcomeInvalid       = "invalid"
	outcomeError         = "error"
)

// chatMetrics holds the instruments for chat traffic and relay latency
type chatMetrics struct {
	calls        *telemetry.Counter
	relayLatency *telemetry.Histogram
}

// newChatMetrics creates the chat instruments. Instrument creation
// failures are logged and leave the field nil; recording nil-checks.
func newChatMetrics(log *logger.Logger) *chatMetrics {
	m := &chatMetrics{}

	calls, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "chat_calls_total",
		Description: "Chat relay calls by outcome",
		Unit:        "1",
	})
	if err != nil {
		log.Warn("failed to create chat call counter", zap.Error(err))
	} else {
		m.calls = calls
	}

	relayLatency, err := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "relay_latency_ms",
		Description: "Latency of upstream relay calls",
		Unit:        "ms",
	})
	if err != nil {
		log.Warn("failed to create relay latency histogram", zap.Error(err))
	} else {
		m.relayLatency = relayLatency
	}

	return m
}

func (m *chatMetrics) recordCall(ctx context.Context, outcome string) {
	if m.calls != nil {
		m.calls.Inc(ctx, attribute.String("outcome", outcome))
	}
}

func (m *chatMetrics) recordRelayLatency(ctx context.Context, ms int) {
	if m.relayLatency != nil {
		m.relayLatency.Record(ctx, float64(ms))
	}
}
