package handlers

import (
	"context"
	"errors"
	"net/http"

	derr "github.com/ozzus/brackets/internal/domain/errors"
)

func mapError(err error) (int, string) {
	var netErr *derr.NetworkError
	switch {
	case errors.Is(err, context.Canceled):
		return 499, "request canceled"
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return http.StatusGatewayTimeout, "backend timeout"
		}
		return http.StatusServiceUnavailable, "backend unreachable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "backend timeout"
	case errors.Is(err, derr.ErrInvalidURL):
		return http.StatusInternalServerError, "backend url misconfigured"
	case errors.Is(err, derr.ErrInvalidResponse):
		return http.StatusBadGateway, "invalid backend response"
	case errors.Is(err, derr.ErrDecoding):
		return http.StatusBadGateway, "backend payload could not be decoded"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
