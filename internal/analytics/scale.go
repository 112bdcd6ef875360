package analytics

import "math"

// Scale is a chart axis: the top value and the tick values from zero
// up to AxisMax inclusive.
type Scale struct {
	AxisMax int
	Ticks   []int
}

// FixedScale picks the axis for charts with a hard per-bucket cap,
// such as the daily hour chart where no hour can exceed 60 minutes.
// The cap selects one of two preset tick tables.
func FixedScale(maxValue int) Scale {
	if maxValue >= 25 {
		return ticksTo(60, 10)
	}
	return ticksTo(25, 5)
}

// DynamicScale picks the axis for line and trend charts from the
// observed magnitudes. Small maxima use preset tick tables; larger
// ones get five ticks on a step rounded up to a multiple of five.
func DynamicScale(magnitudes []float64) Scale {
	rawMax := maxMagnitude(magnitudes)
	switch {
	case rawMax <= 15:
		return ticksTo(15, 5)
	case rawMax <= 25:
		return ticksTo(25, 5)
	default:
		step := int(math.Ceil(rawMax/4/5)) * 5
		if step < 5 {
			step = 5
		}
		return ticksTo(4*step, step)
	}
}

// BarScale picks the axis for bar-distribution charts. Unlike
// DynamicScale it rounds the observed max up to the nearest 10 (20
// above 50) and then adds 20% headroom, rounded up to the nearest 10.
// The two policies produce visibly different axes and are kept as
// separate caller-selected strategies.
func BarScale(magnitudes []float64) Scale {
	rawMax := maxMagnitude(magnitudes)
	rounded := roundUpTo(rawMax, 10)
	if rawMax > 50 {
		rounded = roundUpTo(rawMax, 20)
	}
	axisMax := roundUpTo(float64(rounded)*1.2, 10)
	return ticksTo(axisMax, axisMax/5)
}

func ticksTo(axisMax, step int) Scale {
	ticks := make([]int, 0, axisMax/step+1)
	for v := 0; v <= axisMax; v += step {
		ticks = append(ticks, v)
	}
	return Scale{AxisMax: axisMax, Ticks: ticks}
}

// maxMagnitude returns the largest magnitude, floored at 1 so empty
// or all-zero input still yields a drawable axis.
func maxMagnitude(magnitudes []float64) float64 {
	rawMax := 1.0
	for _, m := range magnitudes {
		if m > rawMax {
			rawMax = m
		}
	}
	return rawMax
}

func roundUpTo(v float64, unit int) int {
	return int(math.Ceil(v/float64(unit))) * unit
}
