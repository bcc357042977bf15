// Package numeric classifies user-supplied strings as integers, floats or
// non-numbers, for form and query inputs that accept either kind.
package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the classification of a parsed string.
type Kind int

const (
	NotANumber Kind = iota
	Integer
	Float
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "not-a-number"
	}
}

// Result is the outcome of Classify. Int is set for Integer results whose
// value fits in an int64; Float is set for every numeric result.
type Result struct {
	Kind  Kind
	Int   int64
	Float float64
}

// Classify parses s in full and reports what kind of number it holds.
// Surrounding whitespace is ignored; anything else that does not parse as a
// whole, including "NaN", is NotANumber. A float with no fractional part,
// such as "2.0" or "1e3", classifies as Integer.
func Classify(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{Kind: NotANumber}
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Result{Kind: Integer, Int: i, Float: float64(i)}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return Result{Kind: NotANumber}
	}
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		res := Result{Kind: Integer, Float: f}
		if f >= math.MinInt64 && f < math.MaxInt64 {
			res.Int = int64(f)
		}
		return res
	}
	return Result{Kind: Float, Float: f}
}

// IsNumeric reports whether s parses as a number of either kind.
func IsNumeric(s string) bool {
	return Classify(s).Kind != NotANumber
}

// IsInteger reports whether s holds a whole number.
func IsInteger(s string) bool {
	return Classify(s).Kind == Integer
}

// IsFloat reports whether s holds a number with a fractional part.
func IsFloat(s string) bool {
	return Classify(s).Kind == Float
}

// ParseFinite parses s as a finite number of either kind. Inputs that do not
// classify as numbers, and infinities, are rejected.
func ParseFinite(s string) (float64, error) {
	r := Classify(s)
	if r.Kind == NotANumber {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if math.IsInf(r.Float, 0) {
		return 0, fmt.Errorf("%q is not finite", strings.TrimSpace(s))
	}
	return r.Float, nil
}
