package ringviz

import (
	"cmp"
	"math"
)

// Within reports whether v lies in the closed interval [lo, hi].
func Within[T cmp.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remap linearly maps v from the interval [fromLo, fromHi] onto
// [toLo, toHi]. Values outside the source interval extrapolate.
// A zero-width source interval maps everything to toLo.
func Remap(v, fromLo, fromHi, toLo, toHi float64) float64 {
	if fromHi == fromLo {
		return toLo
	}
	return toLo + (v-fromLo)*(toHi-toLo)/(fromHi-fromLo)
}

// IntervalDistance returns the gap between intervals [aLo,aHi] and
// [bLo,bHi], or 0 if they touch or overlap. Interval bounds may be given
// in either order.
func IntervalDistance(aLo, aHi, bLo, bHi float64) float64 {
	if aHi < aLo {
		aLo, aHi = aHi, aLo
	}
	if bHi < bLo {
		bLo, bHi = bHi, bLo
	}
	if aHi < bLo {
		return bLo - aHi
	}
	if bHi < aLo {
		return aLo - bHi
	}
	return 0
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
