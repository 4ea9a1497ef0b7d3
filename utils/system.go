package utils

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/visualpts/types"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case []float32:
		for _, f := range v {
			if math.IsNaN(float64(f)) {
				return true
			}
		}
	case *types.PointCloud:
		return IsNan(v.DataP)
	case types.Vertices:
		for _, xyz := range v {
			if IsNan(xyz[:]) {
				return true
			}
		}
	}
	return false
}

// MinMax32 returns the range of f, both zero when f is empty
func MinMax32(f []float32) (fmin, fmax float32) {
	if len(f) == 0 {
		return
	}
	fmin, fmax = f[0], f[0]
	for _, v := range f[1:] {
		if v < fmin {
			fmin = v
		}
		if v > fmax {
			fmax = v
		}
	}
	return
}
