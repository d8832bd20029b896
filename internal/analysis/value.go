package analysis

import (
	"math"
	"strconv"
)

// Scalar is a financial statement value that may be missing. Missing is
// represented as NaN so that it propagates through arithmetic without ever
// collapsing to zero. JSON output renders missing as null.
type Scalar float64

// Missing returns the missing sentinel.
func Missing() Scalar {
	return Scalar(math.NaN())
}

// Of wraps a concrete float64 value.
func Of(v float64) Scalar {
	return Scalar(v)
}

// IsMissing reports whether the value is the missing sentinel.
func (s Scalar) IsMissing() bool {
	return math.IsNaN(float64(s))
}

// Float returns the underlying float64 (NaN when missing).
func (s Scalar) Float() float64 {
	return float64(s)
}

// Div divides num by den with the denominator guard: a missing or zero
// denominator yields missing, never a division error or an infinity.
func Div(num, den Scalar) Scalar {
	if den.IsMissing() || den == 0 {
		return Missing()
	}
	return num / den
}

// Format renders the value with the given precision, or "N/A" when missing.
func (s Scalar) Format(prec int) string {
	if s.IsMissing() {
		return "N/A"
	}
	return strconv.FormatFloat(float64(s), 'f', prec, 64)
}

// MarshalJSON renders missing values as null. encoding/json rejects NaN, so
// the sentinel never leaks into the wire format.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.IsMissing() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(s), 'f', -1, 64), nil
}

// UnmarshalJSON accepts null as the missing sentinel.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Missing()
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Scalar(v)
	return nil
}

// Pair holds the beginning-of-period and end-of-period values of one line
// item or ratio.
type Pair struct {
	Beginning Scalar `json:"beginning"`
	End       Scalar `json:"end"`
}

// MissingPair returns a pair with both periods missing.
func MissingPair() Pair {
	return Pair{Beginning: Missing(), End: Missing()}
}
