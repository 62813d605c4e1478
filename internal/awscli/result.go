package awscli

import (
	"encoding/json"
	"errors"
)

// ErrUnavailable is returned by Decode when the invocation that produced
// the Result failed (timeout, non-zero exit, or malformed output).
var ErrUnavailable = errors.New("awscli: result unavailable")

// Result is the outcome of one CLI invocation: either parsed-JSON bytes or
// the unavailable sentinel. The zero value is unavailable, which keeps
// "command failed" distinct from "command returned an empty document".
type Result struct {
	raw json.RawMessage
}

// Unavailable returns the failure sentinel.
func Unavailable() Result {
	return Result{}
}

// OK wraps raw JSON bytes in an available Result.
func OK(raw json.RawMessage) Result {
	if raw == nil {
		raw = json.RawMessage("{}")
	}
	return Result{raw: raw}
}

// Available reports whether the invocation produced usable JSON.
func (r Result) Available() bool {
	return r.raw != nil
}

// Decode unmarshals the result body into v. Returns ErrUnavailable for the
// sentinel so callers can map it to their own fallback at the boundary.
func (r Result) Decode(v any) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return json.Unmarshal(r.raw, v)
}
