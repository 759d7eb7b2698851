// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault entries and credential inputs before they
// reach the cipher or the store.
//
// Every rule failure wraps ErrInvalidEntry, so one errors.Is check covers
// the whole family while the message still names the broken rule.
package validators

import "context"

// Validator checks value, optionally only the named fields. Unknown field
// names yield ErrUnknownField, unsupported value types ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
