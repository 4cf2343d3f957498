package sauce

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/google/go-querystring/query"
)

// Flag is a query parameter that is sent as an empty value ("pretty=") when
// set and omitted otherwise.
type Flag bool

// EncodeValues implements query.Encoder.
func (f Flag) EncodeValues(key string, v *url.Values) error {
	if f {
		v.Set(key, "")
	}
	return nil
}

// EncodeQuery appends the query string built from opts to path.
//
// opts is nil or an options struct whose fields carry `url` tags. Fields left
// at their zero value are absent and contribute nothing. The wire names in
// the tags are where reserved words are renamed, e.g. a jobs "start" filter
// travels as "from". When nothing is present path is returned unchanged.
func EncodeQuery(path string, opts any) (string, error) {
	if opts == nil {
		return path, nil
	}
	v := reflect.ValueOf(opts)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return path, nil
	}

	values, err := query.Values(opts)
	if err != nil {
		return "", fmt.Errorf("unable to encode query parameters: %w", err)
	}
	if len(values) == 0 {
		return path, nil
	}
	return path + "?" + values.Encode(), nil
}
