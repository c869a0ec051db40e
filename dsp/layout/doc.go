// Package layout describes a loudspeaker layout: an ordered, immutable
// sequence of channels, each with a name, nominal and real polar
// position, and an LFE flag. [Layout] is constructed once and shared by
// reference across every panner and GainCalculator built on it.
package layout
