package tool

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
)

// Status marks whether an adapter call produced a usable payload.
// Every adapter response carries a status; an error status always carries a
// non-empty error message and omits substantive payload fields.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind classifies adapter failures so the calling runtime can
// distinguish retryable failures (timeout, network) from non-retryable ones
// (invalid input, missing credential) without parsing message text.
type ErrorKind string

const (
	// ErrorKindInvalidInput marks a rejected query, URL, or option value.
	ErrorKindInvalidInput ErrorKind = "invalid_input"

	// ErrorKindMissingCredential marks a call refused because no API
	// credential was configured; no network request was made.
	ErrorKindMissingCredential ErrorKind = "missing_credential"

	// ErrorKindUpstreamHTTP marks a non-200 response from the upstream API.
	ErrorKindUpstreamHTTP ErrorKind = "upstream_http_error"

	// ErrorKindUpstreamFailure marks an HTTP 200 response whose payload
	// signals failure (e.g. a success flag set to false).
	ErrorKindUpstreamFailure ErrorKind = "upstream_failure"

	// ErrorKindTimeout marks a request that exceeded its deadline.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindNetwork marks a transport-level failure other than a timeout.
	ErrorKindNetwork ErrorKind = "network_error"

	// ErrorKindMalformedResponse marks an upstream body that could not be
	// decoded as JSON.
	ErrorKindMalformedResponse ErrorKind = "malformed_response"

	// ErrorKindUnexpected is the catch-all for failures that fit no other kind.
	ErrorKindUnexpected ErrorKind = "unexpected_error"
)

// ClassifyError maps a transport or decode error to an [ErrorKind].
// Deadline and net timeouts become [ErrorKindTimeout], other url/net errors
// become [ErrorKindNetwork], JSON decode errors become
// [ErrorKindMalformedResponse], and anything else falls through to
// [ErrorKindUnexpected].
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorKindTimeout
		}
		return ErrorKindNetwork
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrorKindTimeout
		}
		return ErrorKindNetwork
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrorKindMalformedResponse
	}

	return ErrorKindUnexpected
}
