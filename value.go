package richfmt

import (
	"fmt"
	"strconv"
)

// Value is what a [Resolver] returns for a key: [Absent], a [PlainText] or
// a [RichText]. The set is closed.
type Value interface {
	value()
}

type absent struct{}

func (absent) value() {}

// Absent means the key has no value. The placeholder's default is written
// in its place.
var Absent Value = absent{}

// PlainText is a value without attributes of its own. It takes the base
// style of the render.
type PlainText string

func (PlainText) value() {}

// ValueOf converts a host value into a [Value].
//
// nil maps to [Absent]. Strings, byte slices, booleans and numbers become
// [PlainText], numbers in their shortest decimal form. A [RichText] keeps
// its own runs. A [fmt.Stringer] is rendered through String, and anything
// else through [fmt.Sprint].
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Absent
	case *RichText:
		if t == nil {
			return Absent
		}
		return *t
	case *PlainText:
		if t == nil {
			return Absent
		}
		return *t
	case Value:
		return t
	case string:
		return PlainText(t)
	case []byte:
		return PlainText(t)
	case fmt.Stringer:
		return PlainText(t.String())
	default:
		return PlainText(valueString(v))
	}
}

func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
