// Package allocentric implements room-relative (cube coordinate) gain
// calculation for layouts that declare allocentric support (see
// [layout.Layout.AllocentricSupport]). Each non-LFE channel's nominal
// direction is treated as a point in the unit cube; CalculateGains
// computes separable per-axis weights (x/y/z) and combines them into a
// tensor-product gain per speaker. Rows (layers) left without a
// speaker at a required column/aisle cell have their weight share
// reassigned to the next layer in BS.2127-1's fixed ceiling > upper >
// mid > lower > floor priority order.
package allocentric
