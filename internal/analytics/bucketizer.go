// Package analytics turns raw session records into bucketed
// distributions, peak detection results, trend comparisons, and
// tag-duration shares. Every function is a pure computation over its
// arguments: no state is held between calls, and degenerate input
// (empty lists, zero-length intervals, absent data) resolves to
// zero-valued results rather than errors.
package analytics

// BucketOverlaps splits the half-open interval [startMin, endMin)
// across fixed-width buckets and returns a fully populated series of
// per-bucket overlap minutes. Bucket i covers [i*widthMin,
// (i+1)*widthMin), so a boundary minute belongs to the later bucket.
// Indices outside [0, bucketCount) are dropped, not wrapped. An
// interval with endMin <= startMin is clamped to zero length and
// contributes nothing.
func BucketOverlaps(startMin, endMin, widthMin, bucketCount int) []int {
	series := make([]int, bucketCount)
	if widthMin <= 0 || bucketCount <= 0 {
		return series
	}
	if endMin <= startMin {
		return series
	}

	first := floorDiv(startMin, widthMin)
	last := floorDiv(endMin-1, widthMin)
	for i := first; i <= last; i++ {
		if i < 0 || i >= bucketCount {
			continue
		}
		bucketStart := i * widthMin
		bucketEnd := bucketStart + widthMin
		overlap := min(endMin, bucketEnd) - max(startMin, bucketStart)
		if overlap > 0 {
			series[i] += overlap
		}
	}
	return series
}

// OverlapBefore returns the minutes of [startMin, endMin) that fall
// strictly before cutoffMin, with the same end<=start clamp as
// BucketOverlaps. A session that starts at or after the cutoff
// contributes nothing.
func OverlapBefore(startMin, endMin, cutoffMin int) int {
	if endMin <= startMin || startMin >= cutoffMin {
		return 0
	}
	return min(endMin, cutoffMin) - startMin
}

// floorDiv is integer division rounding toward negative infinity, so
// negative start minutes map to negative (dropped) bucket indices
// instead of bucket zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
