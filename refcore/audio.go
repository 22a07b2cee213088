package refcore

// Tone parameters.
const (
	toneHz        = 440
	toneAmplitude = 0x1000
)

// generateSamples queues one frame's worth of interleaved stereo samples:
// a square wave, or silence when muted. The queue never grows past the
// configured buffer length; the oldest samples are dropped.
func (c *Core) generateSamples() {
	rate := c.settings.SoundPlaybackRate
	fps := c.header.Region.FrameRate()
	n := rate / fps

	half := rate / toneHz / 2
	if half < 1 {
		half = 1
	}

	for i := 0; i < n; i++ {
		var v int16
		if !c.settings.Mute {
			v = toneAmplitude
			if (c.phase/half)%2 == 1 {
				v = -toneAmplitude
			}
		}
		c.phase++
		if c.settings.Stereo {
			c.samples = append(c.samples, v, -v)
		} else {
			c.samples = append(c.samples, v, v)
		}
	}

	limit := rate * c.settings.SoundBufferMS / 1000 * 2
	if limit < 2*n {
		limit = 2 * n
	}
	if over := len(c.samples) - limit; over > 0 {
		c.samples = append(c.samples[:0], c.samples[over:]...)
	}
}

// FinalizeSamples has nothing to close off; samples are complete once
// queued.
func (c *Core) FinalizeSamples() {}

// SampleCount returns the number of queued samples.
func (c *Core) SampleCount() int {
	return len(c.samples)
}

// MixSamples moves queued samples into dst.
func (c *Core) MixSamples(dst []int16) int {
	n := copy(dst, c.samples)
	c.samples = append(c.samples[:0], c.samples[n:]...)
	return n
}
