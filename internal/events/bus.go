// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/logging"
	"github.com/tomtom215/streamscout/internal/metrics"
)

// Transports.
const (
	TransportChannel = "gochannel"
	TransportNATS    = "nats"
)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus is closed")

// Config selects and configures the transport.
type Config struct {
	// Transport is "gochannel" (in-process, the default) or "nats".
	Transport string

	// NATSURL is the server URL of the nats transport.
	NATSURL string

	// QueueSize is the per-subscriber buffer of the gochannel transport.
	QueueSize int64
}

// Bus publishes and receives catalog reload requests.
type Bus struct {
	transport  string
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates the publisher and subscriber for the configured transport.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBus(cfg Config, logger zerolog.Logger) (*Bus, error) {
	logger = logger.With().Str("component", "events").Logger()
	adapter := logging.NewWatermillAdapter(logger)

	transport := cfg.Transport
	if transport == "" {
		transport = TransportChannel
	}

	switch transport {
	case TransportChannel:
		ch := newChannel(cfg.QueueSize, adapter)
		return &Bus{transport: transport, publisher: ch, subscriber: ch, logger: logger}, nil
	case TransportNATS:
		pub, sub, err := newNATS(cfg.NATSURL, adapter)
		if err != nil {
			return nil, err
		}
		return &Bus{transport: transport, publisher: pub, subscriber: sub, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown event transport %q", cfg.Transport)
	}
}

func newChannel(queueSize int64, adapter watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: queueSize,
	}, adapter)
}

// Transport returns the transport name.
func (b *Bus) Transport() string {
	return b.transport
}

// PublishReload publishes a reload request for reason and returns it.
func (b *Bus) PublishReload(ctx context.Context, reason string) (ReloadRequest, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ReloadRequest{}, ErrBusClosed
	}

	req := NewReloadRequest(reason)
	correlationID := logging.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = logging.RequestIDFromContext(ctx)
	}
	msg, err := EncodeReload(req, correlationID)
	if err != nil {
		return ReloadRequest{}, err
	}
	if err := b.publisher.Publish(TopicCatalogReload, msg); err != nil {
		return ReloadRequest{}, fmt.Errorf("publish %s: %w", TopicCatalogReload, err)
	}

	metrics.RecordEventPublished(TopicCatalogReload)
	logging.Ctx(ctx).Debug().
		Str("request_id", req.RequestID).
		Str("reason", req.Reason).
		Msg("reload request published")
	return req, nil
}

// Subscribe starts receiving reload requests. Messages published before
// Subscribe returns may not be delivered on the gochannel transport.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	msgs, err := b.subscriber.Subscribe(ctx, TopicCatalogReload)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", TopicCatalogReload, err)
	}
	return msgs, nil
}

// Close stops the transport. It is safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	// A second Close on the shared gochannel is a no-op.
	return errors.Join(b.publisher.Close(), b.subscriber.Close())
}

// ReloadHandler processes one reload request.
type ReloadHandler func(ctx context.Context, req ReloadRequest) error

// Consume decodes messages and passes them to handler until msgs is closed
// or ctx is done. Every message is acknowledged: a request that failed is not
// retried, the next reload request or timer tick supersedes it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Consume(ctx context.Context, msgs <-chan *message.Message, handler ReloadHandler, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			handleMessage(ctx, msg, handler, logger)
		}
	}
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func handleMessage(ctx context.Context, msg *message.Message, handler ReloadHandler, logger zerolog.Logger) {
	defer msg.Ack()

	req, err := DecodeReload(msg)
	if err != nil {
		metrics.RecordEventConsumed(TopicCatalogReload, false)
		logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("dropping undecodable reload event")
		return
	}

	msgCtx := logging.ContextWithRequestID(ctx, req.RequestID)
	if id := msg.Metadata.Get(MetadataCorrelationID); id != "" {
		msgCtx = logging.ContextWithCorrelationID(msgCtx, id)
	}

	if err := handler(msgCtx, req); err != nil {
		metrics.RecordEventConsumed(TopicCatalogReload, false)
		logging.Ctx(msgCtx).Warn().Err(err).Str("reason", req.Reason).Msg("reload request failed")
		return
	}
	metrics.RecordEventConsumed(TopicCatalogReload, true)
}
