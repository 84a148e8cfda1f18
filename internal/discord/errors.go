package discord

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cmddoc/internal/services"
)

// APIError is a non-2xx answer from the Discord API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != 0 {
		return fmt.Sprintf("discord api returned %d (code %d): %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("discord api returned %d: %s", e.StatusCode, msg)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func classify(operation string, apiErr *APIError) error {
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		return services.Wrap(services.ErrConfiguration, "discord", operation, "check bot token and application id", apiErr)
	case apiErr.StatusCode == http.StatusNotFound:
		return services.Wrap(services.ErrNotFound, "discord", operation, "unknown application or guild", apiErr)
	case apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests:
		return services.Wrap(services.ErrTransient, "discord", operation, "", apiErr)
	default:
		return services.Wrap(services.ErrValidation, "discord", operation, "request rejected", apiErr)
	}
}
