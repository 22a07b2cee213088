package libsnes

// Framebuffer geometry, in pixels.
const (
	WidePitch   = 1024 // stride used for non-interlaced frames
	NarrowPitch = 512  // stride used for interlaced frames
	MaxHeight   = 512
)

// FrameBuffer is the single pixel buffer the engine renders into. Its
// pitch is a property of the buffer and changes only when a frame's height
// crosses between interlaced and non-interlaced.
type FrameBuffer struct {
	pix   []uint16
	pitch int
}

// NewFrameBuffer allocates a buffer for the widest pitch at the maximum
// height. It starts at WidePitch.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pix:   make([]uint16, WidePitch*MaxHeight),
		pitch: WidePitch,
	}
}

// Pixels returns the whole buffer.
func (f *FrameBuffer) Pixels() []uint16 {
	return f.pix
}

// Pitch returns the current stride in pixels.
func (f *FrameBuffer) Pitch() int {
	return f.pitch
}

// PitchFor returns the stride a frame of the given height is delivered at.
func PitchFor(height int) int {
	if interlaced(height) {
		return NarrowPitch
	}
	return WidePitch
}

func interlaced(height int) bool {
	return height == 448 || height == 478
}

// Normalize moves the frame just rendered to the pitch its height calls
// for. Nothing moves if the buffer is already at that pitch.
func (f *FrameBuffer) Normalize(width, height int) {
	if width > NarrowPitch {
		width = NarrowPitch
	}
	if height > MaxHeight {
		height = MaxHeight
	}

	target := PitchFor(height)
	if target == f.pitch {
		return
	}
	if target == NarrowPitch {
		f.pack(width, height)
	} else {
		f.stretch(width, height)
	}
	f.pitch = target
}

// pack moves rows from WidePitch to NarrowPitch. Destinations never lie
// past their sources, so rows are moved top down. Row 0 is already in
// place.
func (f *FrameBuffer) pack(width, height int) {
	for y := 1; y < height; y++ {
		src := f.pix[y*WidePitch : y*WidePitch+width]
		copy(f.pix[y*NarrowPitch:], src)
	}
}

// stretch moves rows from NarrowPitch to WidePitch, bottom up so that no
// row is overwritten before it has been moved.
func (f *FrameBuffer) stretch(width, height int) {
	for y := height - 1; y >= 0; y-- {
		src := f.pix[y*NarrowPitch : y*NarrowPitch+width]
		copy(f.pix[y*WidePitch:], src)
	}
}

// deinitUpdate is called by the engine when a frame is complete.
func (a *Adapter) deinitUpdate(width, height int) {
	if a.fb == nil {
		return
	}
	a.fb.Normalize(width, height)

	if a.videoRefresh != nil {
		a.videoRefresh(a.fb.Pixels(), width, height)
	}
}
