// Package region implements the point-source panning region handlers:
// [Triplet] (three real loudspeakers forming a spherical triangle),
// [VirtualNgon] (an N-sided region synthesized around a virtual centre
// speaker, decomposed into a ring of triplets), and [QuadRegion] (a
// four-speaker quadrilateral panned via a bilinear-to-quadratic
// reduction). Every [Handler] implementation shares one contract:
// CalculateGains returns a per-member-speaker gain vector that is all
// zero whenever the query direction does not fall inside the region,
// and otherwise normalized to unit power (sum of squares equal to 1).
package region
