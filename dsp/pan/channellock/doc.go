// Package channellock implements BS.2127-1 §7.3.6 channel locking:
// snapping an object position onto the nearest eligible loudspeaker
// when the metadata requests it. A [Locker] built by [NewPolarLocker]
// measures distance as great-circle angle on the unit sphere; one built
// by [NewAllocentricLocker] measures Euclidean distance in cube
// coordinates. Both share the same
// candidate-selection and deterministic tie-break logic.
package channellock
