package jump

import (
	"math"
	"sync/atomic"
)

// TiltFilter is a low-pass filter over horizontal tilt samples.
// Push may be called from any goroutine; Value never blocks.
// Only the latest smoothed value is kept.
type TiltFilter struct {
	weight float64
	bits   atomic.Uint64
}

// NewTiltFilter creates a filter giving the newest sample the given weight.
func NewTiltFilter(weight float64) *TiltFilter {
	return &TiltFilter{weight: weight}
}

// Push folds a sample into the smoothed value and returns the new value.
func (f *TiltFilter) Push(sample float64) float64 {
	for {
		old := f.bits.Load()
		next := f.weight*sample + (1-f.weight)*math.Float64frombits(old)
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Value returns the current smoothed tilt.
func (f *TiltFilter) Value() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Reset clears the smoothed value.
func (f *TiltFilter) Reset() {
	f.bits.Store(0)
}
