package libsnes

// Size of the mixing buffer in int16 samples. Far more than a frame needs.
const audioBufferSize = 0x10000

// samplesAvailable mixes whatever the engine has ready and hands it to the
// audio sink one stereo pair at a time.
func (a *Adapter) samplesAvailable() {
	a.engine.FinalizeSamples()

	avail := a.engine.SampleCount()
	if avail > len(a.audioBuf) {
		avail = len(a.audioBuf)
	}
	if avail <= 0 {
		return
	}

	n := a.engine.MixSamples(a.audioBuf[:avail])
	if n > avail {
		n = avail
	}
	if a.audioSample == nil {
		return
	}
	for i := 0; i+1 < n; i += 2 {
		a.audioSample(a.audioBuf[i], a.audioBuf[i+1])
	}
}
