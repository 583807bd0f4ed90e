package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Undefined is shown instead of a number when dividing by zero.
const Undefined = "Undefined"

// CalcResult is the outcome of one calculator operation.
type CalcResult struct {
	Value     float64
	Undefined bool
}

// String formats the result the way the calculator page shows it: whole
// numbers keep a trailing ".0".
func (r CalcResult) String() string {
	if r.Undefined {
		return Undefined
	}
	switch {
	case math.IsInf(r.Value, 1):
		return "inf"
	case math.IsInf(r.Value, -1):
		return "-inf"
	case math.IsNaN(r.Value):
		return "nan"
	}
	format := byte('f')
	if abs := math.Abs(r.Value); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		format = 'g'
	}
	s := strconv.FormatFloat(r.Value, format, -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

// Calculate applies op ("add", "sub", "mul", "div" or "mod") to a and b.
// Division and modulus by zero return an Undefined result instead of failing.
// Modulus takes the sign of the divisor.
func Calculate(a, b float64, op string) (CalcResult, error) {
	switch op {
	case "add":
		return CalcResult{Value: a + b}, nil
	case "sub":
		return CalcResult{Value: a - b}, nil
	case "mul":
		return CalcResult{Value: a * b}, nil
	case "div":
		if b == 0 {
			return CalcResult{Undefined: true}, nil
		}
		return CalcResult{Value: a / b}, nil
	case "mod":
		if b == 0 {
			return CalcResult{Undefined: true}, nil
		}
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return CalcResult{Value: r}, nil
	default:
		return CalcResult{}, fmt.Errorf("unknown operation %q", op)
	}
}
