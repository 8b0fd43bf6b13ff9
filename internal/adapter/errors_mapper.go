package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func mapStatus(status int, body string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejection, ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejection, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejection, ErrNotFound, body)
	case http.StatusConflict, http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejection, ErrVersionConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejection, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("%w: http %d: %s", ErrRemoteRejection, status, body)
	}
}

// transportError wraps a failure to reach the remote service.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

func decodeError(op string, err error) error {
	return fmt.Errorf("%w: %w: %s: %w", ErrRemoteRejection, ErrDecodingResponse, op, err)
}
