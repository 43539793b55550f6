package model

import (
	stdjson "encoding/json"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// JSON keeps numbers as json.Number so record ids never lose precision and
// sorts map keys so serialized profiles are stable.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type object map[string]any

func decodeObject(b []byte) (object, error) {
	var o object
	if err := JSON.Unmarshal(b, &o); err != nil {
		return nil, err
	}
	return o, nil
}

// first returns the first alias present with a non-nil value.
func (o object) first(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (o object) str(keys ...string) string {
	for _, k := range keys {
		if s := IDString(o[k]); s != "" {
			return s
		}
	}
	return ""
}

func (o object) num(keys ...string) int {
	v, ok := o.first(keys...)
	if !ok {
		return 0
	}
	return toInt(v)
}

// IDString coerces an identifier of any JSON shape to its string form.
// Embedded objects resolve to their own _id or id.
func IDString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case stdjson.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		return object(t).str("_id", "id")
	case object:
		return t.str("_id", "id")
	default:
		return ""
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case stdjson.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i
		}
	}
	return 0
}
