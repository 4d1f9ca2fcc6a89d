package redact

import (
	"encoding"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Encoding is asymmetric: marshaling emits the placeholder while
// unmarshaling decodes into the wrapped value. A Value in a config or
// request struct loads the real secret from the file or payload and
// never echoes it back out.

// MarshalJSON writes the placeholder as a JSON string. The wrapped
// value never reaches the encoder.
func (v Value[T, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Redact())
}

// UnmarshalJSON decodes data into the wrapped value.
func (v *Value[T, P]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.v)
}

// MarshalText writes the placeholder.
func (v Value[T, P]) MarshalText() ([]byte, error) {
	return []byte(v.Redact()), nil
}

// UnmarshalText decodes data into the wrapped value. It supports any T
// whose pointer implements [encoding.TextUnmarshaler], plus string and
// byte-slice kinds directly.
func (v *Value[T, P]) UnmarshalText(data []byte) error {
	if u, ok := any(&v.v).(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText(data)
	}
	rv := reflect.ValueOf(&v.v).Elem()
	switch {
	case rv.Kind() == reflect.String:
		rv.SetString(string(data))
		return nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		rv.SetBytes(append([]byte(nil), data...))
		return nil
	}
	return errors.Newf("redact: cannot unmarshal text into %s", typeName[T]())
}

// MarshalYAML writes the placeholder.
func (v Value[T, P]) MarshalYAML() (any, error) {
	return v.Redact(), nil
}

// UnmarshalYAML decodes the node into the wrapped value.
func (v *Value[T, P]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.v)
}

var (
	_ json.Marshaler           = Secret[string]{}
	_ json.Unmarshaler         = (*Secret[string])(nil)
	_ encoding.TextMarshaler   = Secret[string]{}
	_ encoding.TextUnmarshaler = (*Secret[string])(nil)
	_ yaml.Marshaler           = Secret[string]{}
	_ yaml.Unmarshaler         = (*Secret[string])(nil)
)
