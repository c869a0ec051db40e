package extent

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// gridAzimuthSamples and gridElevationSamples are the fixed
// azimuth/elevation sample counts used to
// integrate a polar extent's solid angle, chosen generously enough to
// approximate the continuous BS.2127-1 integral without making a single
// CalculateGains call prohibitively expensive.
const (
	gridAzimuthSamples   = 5
	gridElevationSamples = 3
)

// weightedDirection is one virtual source direction plus its
// integration weight.
type weightedDirection struct {
	dir    geom.CartesianPosition
	weight float64
}

// polarGrid samples a uniform azimuth/elevation grid spanning ±w/2 and
// ±h/2 around pos, weighting each sample by cos(elevation) so that the
// grid approximates equal-area sampling over the solid angle rather
// than equal-angle sampling (which would over-weight samples near the
// poles).
func polarGrid(pos geom.PolarPosition, width, height float64) []weightedDirection {
	if width == 0 && height == 0 {
		return []weightedDirection{{dir: pos.ToUnitVector(), weight: 1}}
	}

	samples := make([]weightedDirection, 0, gridAzimuthSamples*gridElevationSamples)

	totalWeight := 0.0

	for i := 0; i < gridElevationSamples; i++ {
		elOffset := offsetFor(i, gridElevationSamples, height)
		el := pos.Elevation + elOffset

		for j := 0; j < gridAzimuthSamples; j++ {
			azOffset := offsetFor(j, gridAzimuthSamples, width)
			az := pos.Azimuth + azOffset

			w := math.Cos(el * math.Pi / 180)
			if w < 0 {
				w = 0
			}

			samples = append(samples, weightedDirection{
				dir:    geom.PolarToUnitVector(az, el),
				weight: w,
			})

			totalWeight += w
		}
	}

	if totalWeight == 0 {
		return []weightedDirection{{dir: pos.ToUnitVector(), weight: 1}}
	}

	for i := range samples {
		samples[i].weight /= totalWeight
	}

	return samples
}

// offsetFor returns the i-th of n evenly spaced offsets spanning
// [-span/2, span/2] (a single sample at offset 0 when n == 1).
func offsetFor(i, n int, span float64) float64 {
	if n == 1 {
		return 0
	}

	step := span / float64(n-1)

	return -span/2 + float64(i)*step
}
