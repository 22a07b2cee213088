package refcore

import (
	"encoding/binary"
	"strings"

	snescore "github.com/OV2/snes9x-libsnes/api"
)

// Internal header locations for each mapping.
const (
	loROMHeader = 0x7FC0
	hiROMHeader = 0xFFC0
	headerSize  = 0x20
)

// Offsets within the internal header.
const (
	hdrTitle      = 0x00
	hdrMapMode    = 0x15
	hdrCartType   = 0x16
	hdrROMSize    = 0x17
	hdrSRAMSize   = 0x18
	hdrDest       = 0x19
	hdrVersion    = 0x1B
	hdrComplement = 0x1C
	hdrChecksum   = 0x1E
)

// Largest SRAM a cartridge can declare.
const maxSRAMSize = 0x20000

// Size of the RTC register block of S-RTC and SPC7110 cartridges.
const rtcSize = 20

// Header is the part of a cartridge's internal header the core uses.
type Header struct {
	Title    string
	HiROM    bool
	CartType byte
	SRAMSize int
	Region   snescore.Region
	Version  byte
	Checksum uint16
}

// HasRTC reports whether the cartridge carries a real-time clock chip.
func (h Header) HasRTC() bool {
	return h.CartType == 0x55 || h.CartType == 0xF9
}

// ParseHeader locates and decodes the internal header of rom, which must
// not carry a copier header. The HiROM location is used when only its
// checksum pair is consistent; otherwise LoROM is assumed.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < loROMHeader+headerSize {
		return Header{}, ErrROMTooSmall
	}

	off := loROMHeader
	if !checksumValid(rom, loROMHeader) && checksumValid(rom, hiROMHeader) {
		off = hiROMHeader
	}
	raw := rom[off : off+headerSize]

	h := Header{
		Title:    strings.TrimRight(string(raw[hdrTitle:hdrMapMode]), " \x00"),
		HiROM:    off == hiROMHeader,
		CartType: raw[hdrCartType],
		SRAMSize: sramSize(raw[hdrSRAMSize]),
		Region:   region(raw[hdrDest]),
		Version:  raw[hdrVersion],
		Checksum: binary.LittleEndian.Uint16(raw[hdrChecksum:]),
	}
	return h, nil
}

func checksumValid(rom []byte, off int) bool {
	if len(rom) < off+headerSize {
		return false
	}
	complement := binary.LittleEndian.Uint16(rom[off+hdrComplement:])
	sum := binary.LittleEndian.Uint16(rom[off+hdrChecksum:])
	return complement^sum == 0xFFFF
}

// sramSize decodes the header's SRAM size byte, log2 of the size in
// kilobytes.
func sramSize(code byte) int {
	if code == 0 {
		return 0
	}
	if code > 7 {
		return maxSRAMSize
	}
	return min(1024<<code, maxSRAMSize)
}

// region decodes the destination code. Europe and the other 50Hz markets
// use codes 2 through 12.
func region(dest byte) snescore.Region {
	if dest >= 2 && dest <= 12 {
		return snescore.RegionPAL
	}
	return snescore.RegionNTSC
}
