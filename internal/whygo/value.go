package whygo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindNumeric ValueKind = iota
	KindText
)

// Value is a target or actual as stored on an outcome: either a number or a
// free-form string such as a milestone name. The tag keeps the derivation
// engine's metric-type branch honest instead of silently stringifying.
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

func Num(f float64) *Value {
	return &Value{Kind: KindNumeric, Num: f}
}

func Text(s string) *Value {
	return &Value{Kind: KindText, Text: s}
}

// ParseActual converts a raw string from the HTTP/CLI boundary into a typed
// value: integer first, then float, otherwise text. This is the lossy
// heuristic the boundary performs before calling the recording service.
func ParseActual(raw string) *Value {
	trimmed := strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Num(float64(i))
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Num(f)
	}
	return Text(raw)
}

// Float coerces the value to a number. Text values are parsed after
// trimming; failure means the value has no numeric form.
func (v *Value) Float() (float64, error) {
	if v.Kind == KindNumeric {
		return v.Num, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not numeric", v.Text)
	}
	return f, nil
}

func (v *Value) String() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindNumeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Text
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Kind != other.Kind {
		return false
	}
	if v.Kind == KindNumeric {
		return v.Num == other.Num
	}
	return v.Text == other.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindNumeric {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return err
		}
		v.Kind = KindNumeric
		v.Num = f
		v.Text = ""
		return nil
	case string:
		v.Kind = KindText
		v.Text = t
		v.Num = 0
		return nil
	case bool:
		// Boolean metrics sometimes arrive as JSON booleans in hand-written
		// documents; keep them comparable as text.
		v.Kind = KindText
		v.Text = strconv.FormatBool(t)
		v.Num = 0
		return nil
	default:
		return fmt.Errorf("unsupported value type %T", raw)
	}
}
