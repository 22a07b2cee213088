package libsnes

import (
	"bytes"
	"errors"
	"testing"
)

// TestSerialize_RoundTrip verifies a state survives serialize and
// unserialize byte for byte
func TestSerialize_RoundTrip(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)
	loadTestCartridge(t, a)
	eng.state = []byte("#!s9xsnp:0011\nNAM:000020:test\x00\x01\x02")
	want := append([]byte(nil), eng.state...)

	size := a.SerializeSize()
	if size != len(want) {
		t.Fatalf("SerializeSize() = %d, want %d", size, len(want))
	}
	buf := make([]byte, size)
	if err := a.Serialize(buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("Serialize = %q, want %q", buf, want)
	}

	eng.state = nil
	if err := a.Unserialize(buf); err != nil {
		t.Fatalf("Unserialize failed: %v", err)
	}
	if !bytes.Equal(eng.state, want) {
		t.Errorf("engine state = %q, want %q", eng.state, want)
	}
	if files := scratchFiles(t, a); len(files) != 0 {
		t.Errorf("scratch files = %v, want none", files)
	}
}

// TestSerialize_SizeMismatch verifies a wrong-size buffer is left untouched
func TestSerialize_SizeMismatch(t *testing.T) {
	eng := newFakeEngine()
	a, _ := newTestAdapter(t, eng)
	eng.state = bytes.Repeat([]byte{0xAB}, 64)

	for _, n := range []int{0, 63, 65} {
		dst := bytes.Repeat([]byte{0x55}, n)
		err := a.Serialize(dst)
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("Serialize(%d bytes) error = %v, want ErrSizeMismatch", n, err)
		}
		if !bytes.Equal(dst, bytes.Repeat([]byte{0x55}, n)) {
			t.Errorf("Serialize(%d bytes) modified the buffer", n)
		}
	}
	if files := scratchFiles(t, a); len(files) != 0 {
		t.Errorf("scratch files = %v, want none", files)
	}
}

// TestSerializeSize_FreezeFailure verifies a failed freeze reports 0
func TestSerializeSize_FreezeFailure(t *testing.T) {
	eng := newFakeEngine()
	eng.freezeErr = errors.New("disk full")
	a, _ := newTestAdapter(t, eng)

	if got := a.SerializeSize(); got != 0 {
		t.Errorf("SerializeSize() = %d, want 0", got)
	}
	if err := a.Serialize(make([]byte, 8)); !errors.Is(err, ErrEngineRejected) {
		t.Errorf("Serialize error = %v, want ErrEngineRejected", err)
	}
}

// TestUnserialize_Rejected verifies an engine refusal is reported and the
// temp file removed
func TestUnserialize_Rejected(t *testing.T) {
	eng := newFakeEngine()
	eng.unfreezeErr = errors.New("wrong ROM")
	a, _ := newTestAdapter(t, eng)

	if err := a.Unserialize([]byte("junk")); !errors.Is(err, ErrEngineRejected) {
		t.Errorf("Unserialize error = %v, want ErrEngineRejected", err)
	}
	if files := scratchFiles(t, a); len(files) != 0 {
		t.Errorf("scratch files = %v, want none", files)
	}
}
