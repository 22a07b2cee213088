package romloader

// CopierHeaderSize is the size of the header some backup units prepend to
// a ROM dump.
const CopierHeaderSize = 512

// HasCopierHeader reports whether data starts with a copier header. SNES
// ROM dumps are a whole number of kilobytes, so a dump 512 bytes over a
// kilobyte boundary carries one.
func HasCopierHeader(data []byte) bool {
	return len(data)%1024 == CopierHeaderSize
}

// StripCopierHeader returns data without its copier header, if it has
// one. The returned slice shares data's backing array.
func StripCopierHeader(data []byte) []byte {
	if HasCopierHeader(data) {
		return data[CopierHeaderSize:]
	}
	return data
}
