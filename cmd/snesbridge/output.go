package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/OV2/snes9x-libsnes/libsnes"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// capture collects the audio and the last frame produced by a run.
type capture struct {
	samples []int

	frame         []uint16
	width, height int
	frames        int
}

// video keeps a tightly packed copy of the frame.
func (c *capture) video(frame []uint16, width, height int) {
	pitch := libsnes.PitchFor(height)
	c.frame = c.frame[:0]
	for y := 0; y < height; y++ {
		c.frame = append(c.frame, frame[y*pitch:y*pitch+width]...)
	}
	c.width, c.height = width, height
	c.frames++
}

func (c *capture) audio(left, right int16) {
	c.samples = append(c.samples, int(left), int(right))
}

// writeWAV writes the collected audio as 16-bit stereo PCM.
func (c *capture) writeWAV(path string, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           c.samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode WAV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish WAV: %w", err)
	}
	return f.Close()
}

// writePNG writes the last frame.
func (c *capture) writePNG(path string) error {
	if c.frames == 0 {
		return fmt.Errorf("no frame to write")
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, rgb555(c.frame[y*c.width+x]))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

// rgb555 expands a 0BBBBBGGGGGRRRRR pixel to 8 bits per channel.
func rgb555(p uint16) color.RGBA {
	expand := func(v uint16) uint8 {
		v &= 0x1F
		return uint8(v<<3 | v>>2)
	}
	return color.RGBA{R: expand(p), G: expand(p >> 5), B: expand(p >> 10), A: 0xFF}
}
