package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Otherwise the status picks the
// sentinel and the ErrorResponse message (or the raw body) is appended.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}

func errorMessage(body []byte) string {
	var response models.ErrorResponse
	if err := json.Unmarshal(body, &response); err == nil && response.Error != "" {
		if len(response.Fields) == 0 {
			return response.Error
		}
		details := make([]string, 0, len(response.Fields))
		for _, f := range response.Fields {
			details = append(details, f.Field+" "+f.Message)
		}
		return response.Error + " (" + strings.Join(details, "; ") + ")"
	}
	return strings.TrimSpace(string(body))
}
