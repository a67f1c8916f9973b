// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the API request types and the
// configuration loader. Field names in error messages follow the field's
// query, json or koanf tag, so a failed `q` parameter is reported as "q"
// rather than the Go field name.
//
// # Usage
//
//	type searchRequest struct {
//	    Query string `query:"q" validate:"notblank,printable,max=500"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - notblank: rejects empty and whitespace-only strings
//   - printable: rejects strings containing control characters
package validation
