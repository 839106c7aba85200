package api

import "errors"

// Sentinel errors returned by the gateway. Match with errors.Is.
var (
	// ErrUnavailable covers transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for 401/403 responses on authorized calls,
	// typically a missing or expired token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnexpectedResponse is returned when the backend answers but the body
	// cannot be decoded or lacks the expected success marker.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
