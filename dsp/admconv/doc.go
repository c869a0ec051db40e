// Package admconv implements the ADM (Audio Definition Model) metadata
// conversions between polar and cartesian object position, and between
// polar and cartesian extent (width/height/depth). These are piecewise
// non-linear remappings specific to the ADM convention — distinct from
// the ordinary spherical conversion in dsp/geom, which every panner uses
// internally for direction vectors.
package admconv
