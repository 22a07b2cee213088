package snescore

// Frame skip value that lets the engine pick the skip rate itself.
const AutoFrameRate = 200

// Settings holds the engine configuration applied at Init.
type Settings struct {
	MouseMaster        bool `json:"mouseMaster"`
	SuperScopeMaster   bool `json:"superScopeMaster"`
	JustifierMaster    bool `json:"justifierMaster"`
	MultiPlayer5Master bool `json:"multiPlayer5Master"`

	FrameTimePAL  int `json:"frameTimePAL"`  // microseconds
	FrameTimeNTSC int `json:"frameTimeNTSC"` // microseconds

	SixteenBitSound   bool `json:"sixteenBitSound"`
	Stereo            bool `json:"stereo"`
	SoundPlaybackRate int  `json:"soundPlaybackRate"`
	SoundInputRate    int  `json:"soundInputRate"`
	SoundBufferMS     int  `json:"soundBufferMS"`
	Mute              bool `json:"mute"`

	SupportHiRes             bool `json:"supportHiRes"`
	Transparency             bool `json:"transparency"`
	AutoDisplayMessages      bool `json:"autoDisplayMessages"`
	InitialInfoStringTimeout int  `json:"initialInfoStringTimeout"`
	HDMATimingHack           int  `json:"hdmaTimingHack"`
	BlockInvalidVRAMAccess   bool `json:"blockInvalidVRAMAccess"`
	StopEmulation            bool `json:"stopEmulation"`
	SkipFrames               int  `json:"skipFrames"`
	TurboSkipFrames          int  `json:"turboSkipFrames"`
	AutoSaveDelay            int  `json:"autoSaveDelay"`
}

// DefaultSettings returns the settings the bridge initializes the engine
// with: all peripherals enabled, 16-bit stereo sound at 32kHz and hi-res
// rendering.
func DefaultSettings() Settings {
	return Settings{
		MouseMaster:              true,
		SuperScopeMaster:         true,
		JustifierMaster:          true,
		MultiPlayer5Master:       true,
		FrameTimePAL:             20000,
		FrameTimeNTSC:            16667,
		SixteenBitSound:          true,
		Stereo:                   true,
		SoundPlaybackRate:        32000,
		SoundInputRate:           32000,
		SoundBufferMS:            64,
		SupportHiRes:             true,
		Transparency:             true,
		AutoDisplayMessages:      true,
		InitialInfoStringTimeout: 120,
		HDMATimingHack:           100,
		BlockInvalidVRAMAccess:   true,
		StopEmulation:            true,
		SkipFrames:               AutoFrameRate,
		TurboSkipFrames:          15,
		AutoSaveDelay:            1,
	}
}

// Validate corrects out-of-range values in place, replacing them with the
// defaults. It returns the JSON keys of the fields it corrected.
func (s *Settings) Validate() []string {
	def := DefaultSettings()
	var corrected []string

	fix := func(key string, v *int, min, max, fallback int) {
		if *v < min || *v > max {
			*v = fallback
			corrected = append(corrected, key)
		}
	}

	fix("frameTimePAL", &s.FrameTimePAL, 1000, 100000, def.FrameTimePAL)
	fix("frameTimeNTSC", &s.FrameTimeNTSC, 1000, 100000, def.FrameTimeNTSC)
	fix("soundPlaybackRate", &s.SoundPlaybackRate, 8000, 96000, def.SoundPlaybackRate)
	fix("soundInputRate", &s.SoundInputRate, 8000, 96000, def.SoundInputRate)
	fix("soundBufferMS", &s.SoundBufferMS, 1, 1000, def.SoundBufferMS)
	fix("hdmaTimingHack", &s.HDMATimingHack, 0, 199, def.HDMATimingHack)
	fix("skipFrames", &s.SkipFrames, 0, AutoFrameRate, def.SkipFrames)
	fix("turboSkipFrames", &s.TurboSkipFrames, 0, 200, def.TurboSkipFrames)

	return corrected
}
