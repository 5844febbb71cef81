package integrations

import (
	"encoding/json"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
)

// errorBody is the machine-readable error description returned on 4xx responses.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// Resolve classifies a received response and decodes a successful body into v.
//
// The caller must already have observed the response headers. Classification
// is by status code only:
//   - 2xx: body is strictly decoded into v; failure is a DECODE error carrying the raw body
//   - 4xx: REQUEST error with the remote error description, or the status text when absent
//   - anything else: SERVER error carrying the raw body
//
// On error v may be partially written; callers that expose v must discard it.
func Resolve(status int, body []byte, v any) error {
	switch {
	case status >= 200 && status < 300:
		if err := DecodeStrict(body, v); err != nil {
			return errs.Decode(body, err)
		}
		return nil
	case status >= 400 && status < 500:
		var eb errorBody
		if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
			return errs.Request(status, eb.Error, eb.Description)
		}
		return errs.Request(status, "", "")
	default:
		return errs.Server(status, body)
	}
}
