package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexString is a datastore text column. The portal does not always agree
// with itself on column types, so numbers, booleans and nested JSON are kept
// as their literal text and null becomes "".
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	default:
		*s = FlexString(data)
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexInt is a datastore integer column. It accepts a JSON number, a numeric
// string or null. Anything else reads as 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		text = strings.TrimSpace(v)
	}

	if i, err := strconv.Atoi(text); err == nil {
		*n = FlexInt(i)
		return nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*n = FlexInt(int(f))
		return nil
	}
	*n = 0
	return nil
}

func (n FlexInt) Int() int { return int(n) }
