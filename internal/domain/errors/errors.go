package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrInvalidURL      = errors.New("invalid url")
	ErrInvalidResponse = errors.New("invalid response")
	ErrDecoding        = errors.New("decoding error")
	ErrNetwork         = errors.New("network error")
)

// DecodingKind classifies why a body that looked like the expected shape
// could not be decoded.
type DecodingKind string

const (
	KindKeyNotFound   DecodingKind = "key_not_found"
	KindTypeMismatch  DecodingKind = "type_mismatch"
	KindDataCorrupted DecodingKind = "data_corrupted"
)

// DecodingError keeps the structure of a decode failure instead of a flat
// string so callers can log the offending path. Path indexes elements of the
// top-level list ("standings[3].name"); arrays nested inside an element are
// named without an index ("games.games.game_time").
type DecodingError struct {
	Kind        DecodingKind
	Path        string
	Expected    string
	Found       string
	Description string
}

func (e *DecodingError) Error() string {
	var b strings.Builder
	b.WriteString(ErrDecoding.Error())
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	return b.String()
}

func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}

// ResponseError is returned for a non-2xx status or for a body that matches
// none of the tolerated shapes. StatusCode is zero in the latter case.
type ResponseError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status: %s", ErrInvalidResponse, e.Status)
	}
	if e.Detail == "" {
		return ErrInvalidResponse.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidResponse, e.Detail)
}

func (e *ResponseError) Is(target error) bool {
	return target == ErrInvalidResponse
}

type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrNetwork, e.Op, e.URL, e.Err)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying cause was a deadline of any kind.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
