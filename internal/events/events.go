// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TopicCatalogReload carries requests to rebuild the catalog index.
const TopicCatalogReload = "catalog.reload"

// Message metadata keys.
const (
	MetadataRequestID     = "request_id"
	MetadataCorrelationID = "correlation_id"
)

// ErrInvalidEvent is returned when a message payload cannot be decoded.
var ErrInvalidEvent = errors.New("invalid event payload")

// ReloadRequest asks every listening instance to reload its catalog.
type ReloadRequest struct {
	RequestID   string    `json:"request_id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewReloadRequest creates a request with a fresh ID. A blank reason is
// recorded as "manual".
func NewReloadRequest(reason string) ReloadRequest {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "manual"
	}
	return ReloadRequest{
		RequestID:   uuid.New().String(),
		Reason:      reason,
		RequestedAt: time.Now().UTC(),
	}
}

// EncodeReload wraps req in a watermill message. The message UUID is the
// request ID so transports that deduplicate by message ID see one delivery.
func EncodeReload(req ReloadRequest, correlationID string) (*message.Message, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal reload request: %w", err)
	}
	msg := message.NewMessage(req.RequestID, payload)
	msg.Metadata.Set(MetadataRequestID, req.RequestID)
	if correlationID != "" {
		msg.Metadata.Set(MetadataCorrelationID, correlationID)
	}
	return msg, nil
}

// DecodeReload extracts the reload request carried by msg.
func DecodeReload(msg *message.Message) (ReloadRequest, error) {
	var req ReloadRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return ReloadRequest{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if req.RequestID == "" {
		req.RequestID = msg.UUID
	}
	if req.Reason == "" {
		req.Reason = "manual"
	}
	return req, nil
}
