package models

import "encoding/json"

// ErrorDetail extracts a human-readable message from an error response
// body. The canteen API mostly answers {"detail": "..."} but some proxied
// endpoints use the {"status": ..., "message": "..."} envelope, so both
// shapes are normalized here.
func ErrorDetail(body []byte) string {
	var raw struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}
	if len(raw.Detail) > 0 {
		var s string
		if err := json.Unmarshal(raw.Detail, &s); err == nil {
			return s
		}
		// detail can be a structured validation payload; pass it through
		return string(raw.Detail)
	}
	return raw.Message
}
