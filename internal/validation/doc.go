// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared (it caches struct metadata). API
// handlers decode query parameters into small request structs and validate
// them before touching the engine:
//
//	type recommendationsRequest struct {
//	    Title string `query:"title" validate:"required,notblank,max=500"`
//	    Limit int    `query:"limit" validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // render apiErr as a 400 response
//	    return
//	}
//
// Errors name the query parameter ("limit must be at most 100"), not the Go
// field.
package validation
