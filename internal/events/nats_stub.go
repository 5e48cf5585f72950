// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

//go:build !nats

package events

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NATSAvailable reports whether the binary was built with the nats transport.
const NATSAvailable = false

// ErrNATSUnavailable is returned when the nats transport is selected in a
// binary built without the nats tag.
var ErrNATSUnavailable = errors.New("nats transport not available: build with -tags=nats")

func newNATS(string, watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	return nil, nil, ErrNATSUnavailable
}
