// Package jsonutil holds the generic JSON plumbing shared by the metadata
// types: the recursive overlay merge, the nanosecond duration encoding and
// the payload loading entry points.
package jsonutil // import "code.cloudfoundry.org/imagemeta/jsonutil"

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"time"

	"code.cloudfoundry.org/imagemeta"
	errorspkg "github.com/pkg/errors"
)

// Merge folds overlay into base and returns the merged value. When both
// sides are JSON objects the overlay is applied key by key, recursing into
// the values; an overlay key holding null carries no opinion and is skipped,
// it never deletes the base entry. Any other pairing, arrays included,
// resolves by the overlay value replacing the base value.
func Merge(base, overlay interface{}) interface{} {
	baseMap, baseIsMap := base.(map[string]interface{})
	overlayMap, overlayIsMap := overlay.(map[string]interface{})
	if !baseIsMap || !overlayIsMap {
		return overlay
	}

	for key, value := range overlayMap {
		if value == nil {
			continue
		}
		baseMap[key] = Merge(baseMap[key], value)
	}

	return baseMap
}

// EncodeDuration returns the integer nanosecond representation used on the
// wire for duration fields. A nil duration has no integer representation
// and is reported as an UnencodableFieldError naming the field.
func EncodeDuration(field string, duration *time.Duration) (int64, error) {
	if duration == nil {
		return 0, &imagemeta.UnencodableFieldError{Field: field}
	}

	return duration.Nanoseconds(), nil
}

// DecodeDuration is the inverse of EncodeDuration.
func DecodeDuration(nanos int64) time.Duration {
	return time.Duration(nanos)
}

// FromFile reads the JSON document at path into v.
func FromFile(path string, v interface{}) error {
	payload, err := ioutil.ReadFile(path)
	if err != nil {
		return errorspkg.Wrap(err, "reading payload file")
	}

	return FromSlice(payload, v)
}

// FromString parses the JSON document s into v.
func FromString(s string, v interface{}) error {
	return FromSlice([]byte(s), v)
}

// FromSlice parses the JSON document payload into v. Syntactically invalid
// input is reported as a MalformedPayloadError carrying the parser
// diagnostic; schema errors raised by the target type pass through as-is.
func FromSlice(payload []byte, v interface{}) error {
	if err := json.Unmarshal(payload, v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &imagemeta.MalformedPayloadError{Cause: err}
		}
		return err
	}

	return nil
}
