package scene

import (
	"math"
	"strconv"
)

// niceSteps are the mantissas allowed for tick spacings.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// ticks returns evenly spaced tick positions covering [lo, hi] with
// roughly the given number of intervals.
func ticks(lo, hi float64, intervals int) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return []float64{lo}
	}

	raw := span / float64(intervals)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag * 10
	for _, m := range niceSteps {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}

	// tolerate rounding errors at the interval ends
	eps := step * 1e-9
	var res []float64
	for i := math.Ceil((lo - eps) / step); i*step <= hi+eps; i++ {
		v := i * step
		if v == 0 {
			v = 0 // avoid -0
		}
		res = append(res, v)
	}
	return res
}

func tickLabels(values []float64) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return res
}
