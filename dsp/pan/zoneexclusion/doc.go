// Package zoneexclusion implements BS.2127-1 §7.3.12 zone exclusion: a
// [Zone] describes a region of the loudspeaker layout (polar
// az/el/distance ranges, or a cartesian axis-aligned box) that an
// object's audio must not reach; [ExcludedSet] computes the excluded
// speaker set as the union of zone memberships, and [Handler]
// redistributes any
// gain mass assigned to excluded speakers onto non-excluded ones via a
// same-row / adjacent-row / opposite-side priority cascade.
package zoneexclusion
