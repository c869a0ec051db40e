package layout

import "github.com/cwbudde/algo-admrender/dsp/geom"

func ch(name string, az, el float64) Channel {
	p := geom.PolarPosition{Azimuth: az, Elevation: el, Distance: 1}
	return Channel{Name: name, Nominal: p, Real: p}
}

func lfe(name string, az, el float64) Channel {
	c := ch(name, az, el)
	c.IsLFE = true

	return c
}

// Stereo returns the 0+2+0 layout (M+030, M-030).
func Stereo() Layout {
	return NewLayout("0+2+0", []Channel{
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
	}, false)
}

// Surround50 returns the 0+5+0 layout: M+030, M-030, M+000, M+110,
// M-110, plus an LFE channel.
func Surround50() Layout {
	return NewLayout("0+5+0", []Channel{
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
		ch("M+000", 0, 0),
		ch("M+110", 110, 0),
		ch("M-110", -110, 0),
		lfe("LFE1", 0, -30),
	}, false)
}

// Surround50NoCentre returns the 0+5+0 channel set with M+000 omitted,
// used by BS.2127-1 test scenarios that exercise the boundary between
// M+030 and M-030.
func Surround50NoCentre() Layout {
	return NewLayout("0+5+0-nc", []Channel{
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
		ch("M+110", 110, 0),
		ch("M-110", -110, 0),
		lfe("LFE1", 0, -30),
	}, false)
}

// Surround4_5_0 returns the 4+5+0 layout: five mid-layer channels plus
// four upper-layer height channels and an LFE.
func Surround4_5_0() Layout {
	return NewLayout("4+5+0", []Channel{
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
		ch("M+000", 0, 0),
		ch("M+110", 110, 0),
		ch("M-110", -110, 0),
		lfe("LFE1", 0, -30),
		ch("U+030", 30, 30),
		ch("U-030", -30, 30),
		ch("U+110", 110, 30),
		ch("U-110", -110, 30),
	}, false)
}

// Surround4_9_0 returns the 4+9+0 layout: nine mid-layer channels plus
// four upper-layer height channels and an LFE.
func Surround4_9_0() Layout {
	return NewLayout("4+9+0", []Channel{
		ch("M+000", 0, 0),
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
		ch("M+060", 60, 0),
		ch("M-060", -60, 0),
		ch("M+090", 90, 0),
		ch("M-090", -90, 0),
		ch("M+135", 135, 0),
		ch("M-135", -135, 0),
		lfe("LFE1", 0, -30),
		ch("U+030", 30, 30),
		ch("U-030", -30, 30),
		ch("U+110", 110, 30),
		ch("U-110", -110, 30),
	}, false)
}

// Surround9_10_3 returns the 9+10+3 immersive layout, the smallest
// cataloged layout with allocentric (cube-relative) panning support.
func Surround9_10_3() Layout {
	return NewLayout("9+10+3", []Channel{
		ch("M+000", 0, 0),
		ch("M+030", 30, 0),
		ch("M-030", -30, 0),
		ch("M+060", 60, 0),
		ch("M-060", -60, 0),
		ch("M+135", 135, 0),
		ch("M-135", -135, 0),
		ch("M+090", 90, 0),
		ch("M-090", -90, 0),
		lfe("LFE1", 0, -30),
		ch("U+030", 30, 30),
		ch("U-030", -30, 30),
		ch("U+000", 0, 30),
		ch("U+110", 110, 30),
		ch("U-110", -110, 30),
		ch("U+135", 135, 30),
		ch("U-135", -135, 30),
		ch("UH+180", 180, 30),
		ch("T+000", 0, 90),
		ch("B+000", 0, -30),
		ch("B+045", 45, -30),
		ch("B-045", -45, -30),
	}, true)
}

// Catalog returns every recognized BS.2127 layout keyed by name.
func Catalog() map[string]Layout {
	return map[string]Layout{
		"0+2+0":  Stereo(),
		"0+5+0":  Surround50(),
		"4+5+0":  Surround4_5_0(),
		"4+9+0":  Surround4_9_0(),
		"9+10+3": Surround9_10_3(),
	}
}
