// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package models defines the JSON shapes returned by the HTTP API.
//
// Every endpoint responds with an APIResponse envelope. Successful responses
// carry one of the payload types in Data; failures carry an APIError.
// Engine types (recommend.Result, recommend.TitleSummary, recommend.Status)
// are embedded directly so that their field names are the wire names.
package models
