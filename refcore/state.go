package refcore

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"
)

var stateMagic = [4]byte{'R', 'F', 'C', 'S'}

const stateVersion = 1

// stateHeader is the fixed part of a save state. Variable-length sections
// follow in field order: SRAM, RTC, then the held commands as
// length-prefixed strings.
type stateHeader struct {
	Magic    [4]byte
	Version  uint16
	Checksum uint16
	Frame    uint32
	Phase    uint32
	SRAMLen  uint32
	RTCLen   uint32
	HeldLen  uint32
}

// FreezeGame writes the frame counter, tone phase, SRAM, RTC and held
// inputs to path.
func (c *Core) FreezeGame(path string) error {
	if !c.loaded {
		return ErrNoCartridge
	}

	var held []string
	for cmd, down := range c.held {
		if down {
			held = append(held, cmd)
		}
	}
	slices.Sort(held)

	var buf bytes.Buffer
	hdr := stateHeader{
		Magic:    stateMagic,
		Version:  stateVersion,
		Checksum: c.header.Checksum,
		Frame:    c.frame,
		Phase:    uint32(c.phase),
		SRAMLen:  uint32(len(c.sram)),
		RTCLen:   uint32(len(c.rtc)),
		HeldLen:  uint32(len(held)),
	}
	binary.Write(&buf, binary.LittleEndian, hdr)
	buf.Write(c.sram)
	buf.Write(c.rtc)
	for _, cmd := range held {
		binary.Write(&buf, binary.LittleEndian, uint16(len(cmd)))
		buf.WriteString(cmd)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// UnfreezeGame restores a state written by FreezeGame for the loaded
// cartridge. Nothing changes unless the whole state is valid.
func (c *Core) UnfreezeGame(path string) error {
	if !c.loaded {
		return ErrNoCartridge
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var hdr stateHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if hdr.Magic != stateMagic || hdr.Version != stateVersion {
		return ErrBadState
	}
	if hdr.Checksum != c.header.Checksum || int(hdr.SRAMLen) != len(c.sram) || int(hdr.RTCLen) != len(c.rtc) {
		return ErrWrongCartridge
	}

	sram := make([]byte, hdr.SRAMLen)
	rtc := make([]byte, hdr.RTCLen)
	if _, err := io.ReadFull(r, sram); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if _, err := io.ReadFull(r, rtc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}

	held := make(map[string]bool, hdr.HeldLen)
	for i := uint32(0); i < hdr.HeldLen; i++ {
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return fmt.Errorf("%w: %v", ErrBadState, err)
		}
		cmd := make([]byte, n)
		if _, err := io.ReadFull(r, cmd); err != nil {
			return fmt.Errorf("%w: %v", ErrBadState, err)
		}
		held[string(cmd)] = true
	}

	c.frame = hdr.Frame
	c.phase = int(hdr.Phase)
	copy(c.sram, sram)
	copy(c.rtc, rtc)
	c.held = held
	c.samples = c.samples[:0]
	return nil
}
