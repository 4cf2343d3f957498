package sauce

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeBody(payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to encode request body: %w", err)
	}
	return body, nil
}

// Decode converts a Result into out, a pointer to a struct, slice or map.
// Field names follow the `json` tags; fields the service adds are ignored and
// scalar types are converted where possible (e.g. a numeric build into a string).
func Decode(result Result, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(result); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}

// decodeAs runs a call and decodes its result into a T.
func decodeAs[T any](result Result, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := Decode(result, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Bool returns a pointer to v, for optional fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional fields.
func Int(v int) *int { return &v }

// String returns a pointer to v, for optional fields.
func String(v string) *string { return &v }
