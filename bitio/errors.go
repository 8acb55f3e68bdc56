// Package bitio provides a most-significant-bit-first bit reader over a
// byte source.
package bitio

import "errors"

var (
	// ErrUnexpectedEnd is returned when the underlying byte source is
	// exhausted mid-read.
	ErrUnexpectedEnd = errors.New("bitio: unexpected end of stream")
)
