// Package utils provides shared low-level helpers used throughout the
// prospector internals. It covers the synchronous JSON POST helper used by
// the tool adapters to talk to third-party APIs, content truncation with an
// explicit marker suffix, and small generic conveniences.
//
// Key entry points: [DoPostSync] for bearer-authenticated JSON round-trips,
// [Truncate] for bounded content with the [TruncationMarker] suffix, and
// [Ptr] for converting values to pointers.
package utils
