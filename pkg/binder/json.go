// Package binder decodes HTTP request bodies into typed values.
package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the maximum accepted JSON body (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes the request body into v. Unknown fields, trailing data and
// bodies over DefaultMaxJSONSize are rejected.
func JSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}
	return nil
}

// IsBindingError reports whether err was produced by a binder.
func IsBindingError(err error) bool {
	return errors.Is(err, ErrFailedToParseJSON) ||
		errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrMissingContentType)
}
