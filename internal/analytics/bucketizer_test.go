package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketOverlaps_SingleBucket(t *testing.T) {
	// 14:15-14:45 lands entirely in hour 14.
	series := BucketOverlaps(14*60+15, 14*60+45, 60, 24)
	assert.Equal(t, 30, series[14])
	for i, v := range series {
		if i != 14 {
			assert.Zero(t, v, "hour %d", i)
		}
	}
}

func TestBucketOverlaps_SpansBoundary(t *testing.T) {
	// 13:50-14:10 splits 10/10 across hours 13 and 14.
	series := BucketOverlaps(13*60+50, 14*60+10, 60, 24)
	assert.Equal(t, 10, series[13])
	assert.Equal(t, 10, series[14])
}

func TestBucketOverlaps_ConservesDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"full day", 0, 24 * 60},
		{"exact hour", 9 * 60, 10 * 60},
		{"three hours offset", 9*60 + 20, 12*60 + 5},
		{"one minute", 23*60 + 59, 24 * 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, v := range BucketOverlaps(tt.start, tt.end, 60, 24) {
				total += v
			}
			assert.Equal(t, tt.end-tt.start, total)
		})
	}
}

func TestBucketOverlaps_BoundaryMinuteGoesToLaterBucket(t *testing.T) {
	// A session starting exactly at 10:00 puts nothing in hour 9.
	series := BucketOverlaps(10*60, 10*60+30, 60, 24)
	assert.Zero(t, series[9])
	assert.Equal(t, 30, series[10])
}

func TestBucketOverlaps_ZeroAndInvertedIntervals(t *testing.T) {
	assert.Equal(t, make([]int, 24), BucketOverlaps(600, 600, 60, 24), "zero-length")
	assert.Equal(t, make([]int, 24), BucketOverlaps(700, 600, 60, 24), "end before start clamps to zero")
}

func TestBucketOverlaps_OutOfRangeIndicesDropped(t *testing.T) {
	// Interval reaching past the bucket table is truncated, not wrapped.
	series := BucketOverlaps(-30, 90, 60, 1)
	assert.Equal(t, []int{60}, series)
}

func TestOverlapBefore(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, cutoff   int
		want                 int
	}{
		{"fully before cutoff", 540, 600, 720, 60},
		{"clipped at cutoff", 540, 600, 570, 30},
		{"starts at cutoff", 570, 600, 570, 0},
		{"starts after cutoff", 600, 660, 570, 0},
		{"inverted interval", 600, 540, 720, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapBefore(tt.start, tt.end, tt.cutoff))
		})
	}
}
