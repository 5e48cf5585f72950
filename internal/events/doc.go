// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package events carries catalog reload requests over Watermill.
//
// The API publishes a ReloadRequest on the catalog.reload topic; the catalog
// service consumes it and rebuilds the index. The default transport is an
// in-process gochannel. Binaries built with -tags=nats can select the nats
// transport so that one request reloads every instance:
//
//	bus, err := events.NewBus(events.Config{Transport: "nats", NATSURL: url}, logger)
//	msgs, err := bus.Subscribe(ctx)
//	go events.Consume(ctx, msgs, handler, logger)
//	req, err := bus.PublishReload(ctx, "catalog updated")
//
// Payloads are JSON encoded with goccy/go-json.
package events
