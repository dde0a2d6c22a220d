package model

import (
	"strconv"
	"strings"
)

// Value is one raw cell from an imported row: either a string or a number,
// depending on what the upstream reader produced. The tag makes the coercion
// explicit instead of relying on interface{} type switches at every call site.
type Value struct {
	Str     string
	Num     float64
	Numeric bool
}

// String wraps a string cell.
func String(s string) Value {
	return Value{Str: s}
}

// Number wraps a numeric cell.
func Number(f float64) Value {
	return Value{Num: f, Numeric: true}
}

// Empty reports whether the cell carries no usable value. A numeric cell is
// never empty: literal zero is a valid amount.
func (v Value) Empty() bool {
	return !v.Numeric && strings.TrimSpace(v.Str) == ""
}

// Raw returns the cell as the user saw it, for error messages.
func (v Value) Raw() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return strings.TrimSpace(v.Str)
}
