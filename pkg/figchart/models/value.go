package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a numeric datum. NaN and infinities encode as JSON null, which
// the renderer treats as a missing point.
type Value float64

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}

// IsMissing reports whether v carries no valid number.
func (v Value) IsMissing() bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// DatumKind selects how a Datum is encoded.
type DatumKind uint8

const (
	// DatumScalar encodes as a bare number.
	DatumScalar DatumKind = iota
	// DatumTuple encodes as an array, e.g. [x, y] or a five-number summary.
	DatumTuple
	// DatumNamed encodes as {"name": ..., "value": ...}.
	DatumNamed
)

// Datum is one item of a series.
type Datum struct {
	Kind DatumKind
	// Name is used by DatumNamed items.
	Name string
	// Values holds one value for scalars and named scalars, or the tuple.
	Values []Value
}

// Scalar returns a bare numeric item.
func Scalar(v float64) Datum {
	return Datum{Kind: DatumScalar, Values: []Value{Value(v)}}
}

// Tuple returns an array item.
func Tuple(vs ...float64) Datum {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = Value(v)
	}
	return Datum{Kind: DatumTuple, Values: values}
}

// Named returns a named item; a single value encodes as a scalar value,
// more than one as an array value.
func Named(name string, vs ...float64) Datum {
	d := Tuple(vs...)
	d.Kind = DatumNamed
	d.Name = name
	return d
}

// MarshalJSON implements json.Marshaler.
func (d Datum) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DatumTuple:
		return json.Marshal(d.Values)
	case DatumNamed:
		var value interface{} = d.Values
		if len(d.Values) == 1 {
			value = d.Values[0]
		}
		return json.Marshal(struct {
			Name  string      `json:"name"`
			Value interface{} `json:"value"`
		}{d.Name, value})
	default:
		if len(d.Values) == 0 {
			return []byte("null"), nil
		}
		return json.Marshal(d.Values[0])
	}
}

// Offset is a layout position: either pixels or a keyword like "center".
type Offset struct {
	Px      int
	Keyword string
}

// Px returns a pixel offset.
func Px(n int) *Offset { return &Offset{Px: n} }

// Keyword returns a keyword offset.
func Keyword(s string) *Offset { return &Offset{Keyword: s} }

// MarshalJSON implements json.Marshaler.
func (o Offset) MarshalJSON() ([]byte, error) {
	if o.Keyword != "" {
		return json.Marshal(o.Keyword)
	}
	return []byte(strconv.Itoa(o.Px)), nil
}
