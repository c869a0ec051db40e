// Package extent implements the spread-source panners: [PolarHandler]
// integrates a weighted grid of virtual point sources over the solid
// angle a polar (w,h,d) extent subtends, [AmbisonicHandler] performs
// the same integration but accumulates Ambisonic encoding coefficients
// instead of loudspeaker gains, and [AllocentricHandler] performs the
// cube-coordinate equivalent through an allocentric panner. All three
// reduce to a single point-source query when the extent is degenerate
// (w = h = d = 0).
package extent
