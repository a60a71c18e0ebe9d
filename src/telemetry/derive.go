package telemetry

// Derived display series. These are pure slice transforms computed per
// invocation and never stored back into the table.

// Kilometers scales a meter-valued series down by 1000. Always returns a
// fresh slice so table columns stay untouched.
func Kilometers(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v / 1000
	}
	return out
}

// DeltaVLost computes, per sample, the portion of expended delta-v that did
// not become net orbital speed gain: expended[i] - orbital[i] + orbital[0].
// The orbital speed at the first sample stands in for the initial tangential
// velocity. Inputs are equal length by the table invariant; empty input
// yields an empty series.
func DeltaVLost(expended, orbital []float64) []float64 {
	if len(expended) == 0 {
		return nil
	}
	tangential := orbital[0]
	out := make([]float64, len(expended))
	for i, dv := range expended {
		out[i] = dv - orbital[i] + tangential
	}
	return out
}

// TrimLeading drops the first n samples of a series. Series shorter than n
// collapse to an empty slice rather than panicking, so short recordings still
// render (as a blank panel).
func TrimLeading(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return nil
	}
	return xs[n:]
}
