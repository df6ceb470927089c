package sgmwcs

import "strconv"

// DefaultInfToken is how the solver spells an infinite weight.
const DefaultInfToken = "inf"

// Weight is a signal weight: an integer or infinity.
type Weight struct {
	value int
	inf   bool
}

// Int returns a finite weight.
func Int(v int) Weight { return Weight{value: v} }

// Inf returns the infinite weight.
func Inf() Weight { return Weight{inf: true} }

// IsInf reports whether w is infinite.
func (w Weight) IsInf() bool { return w.inf }

// Positive reports whether w is a finite weight greater than zero.
func (w Weight) Positive() bool { return !w.inf && w.value > 0 }

// Format renders w, spelling infinity as infToken.
func (w Weight) Format(infToken string) string {
	if w.inf {
		return infToken
	}
	return strconv.Itoa(w.value)
}

// String renders w with [DefaultInfToken].
func (w Weight) String() string { return w.Format(DefaultInfToken) }
