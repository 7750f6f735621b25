// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnknownToken is returned when the presented bearer token does not
	// match the configured credential.
	ErrUnknownToken = errors.New("unknown token")
)
