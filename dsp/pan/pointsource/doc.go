// Package pointsource assembles a [Panner] for a loudspeaker layout:
// the set of [region.Handler]s that together cover the full sphere
// around the listener, derived from the layout's channels grouped into
// rings by nominal elevation. There is no per-layout-name region table:
// every layout goes through the same ring-based construction.
// CalculateGains dispatches a query direction to the first region that
// accepts it and returns the resulting full-layout gain vector, with
// LFE channels forced to zero.
package pointsource
