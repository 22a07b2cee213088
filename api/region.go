package snescore

// Region represents a console video region.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
)

// String returns the display name of the region.
func (r Region) String() string {
	switch r {
	case RegionNTSC:
		return "NTSC"
	case RegionPAL:
		return "PAL"
	default:
		return "Unknown"
	}
}

// FrameRate returns the nominal frames per second for the region.
func (r Region) FrameRate() int {
	if r == RegionPAL {
		return 50
	}
	return 60
}
