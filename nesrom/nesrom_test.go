package nesrom

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestROM assembles a minimal well-formed iNES image (prgBlocks x
// 16KB PRG, chrBlocks x 8KB CHR, no trainer, no PlayChoice data) and
// returns its path.
func writeTestROM(t *testing.T, prgBlocks, chrBlocks uint8) string {
	t.Helper()

	header := []byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, 0x01, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := append([]byte{}, header...)
	buf = append(buf, make([]byte, PRG_BLOCK_SIZE*int(prgBlocks))...)
	buf = append(buf, make([]byte, CHR_BLOCK_SIZE*int(chrBlocks))...)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing test ROM: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeTestROM(t, 2, 1)

	rom, err := New(path)
	if err != nil {
		t.Fatalf("New(%q): %v", path, err)
	}
	if rom.NumPrgBlocks() != 2 {
		t.Errorf("NumPrgBlocks() = %d, want 2", rom.NumPrgBlocks())
	}
	if rom.PrgSize() != PRG_BLOCK_SIZE*2 {
		t.Errorf("PrgSize() = %d, want %d", rom.PrgSize(), PRG_BLOCK_SIZE*2)
	}
	if rom.ChrSize() != CHR_BLOCK_SIZE {
		t.Errorf("ChrSize() = %d, want %d", rom.ChrSize(), CHR_BLOCK_SIZE)
	}
	if rom.HasChrRAM() {
		t.Errorf("HasChrRAM() = true, want false (CHR data present)")
	}
	if rom.MirroringMode() != MIRROR_VERTICAL {
		t.Errorf("MirroringMode() = %d, want vertical", rom.MirroringMode())
	}
}

func TestNewChrRAM(t *testing.T) {
	path := writeTestROM(t, 1, 0)

	rom, err := New(path)
	if err != nil {
		t.Fatalf("New(%q): %v", path, err)
	}
	if !rom.HasChrRAM() {
		t.Errorf("HasChrRAM() = false, want true (chrSize == 0)")
	}
	if rom.ChrSize() != CHR_BLOCK_SIZE {
		t.Errorf("ChrSize() = %d, want %d (allocated CHR RAM)", rom.ChrSize(), CHR_BLOCK_SIZE)
	}
}

func TestNewMissingFile(t *testing.T) {
	if _, err := New("/nonexistent/rom.nes"); err == nil {
		t.Errorf("New() with a missing file: got nil error")
	}
}

func TestPrgChrReadWrite(t *testing.T) {
	path := writeTestROM(t, 1, 1)
	rom, err := New(path)
	if err != nil {
		t.Fatalf("New(%q): %v", path, err)
	}

	rom.PrgWrite(0x10, 0x42)
	if got := rom.PrgRead(0x10); got != 0x42 {
		t.Errorf("PrgRead(0x10) = %#02x, want 0x42", got)
	}

	rom.ChrWrite(0x20, 0x99)
	if got := rom.ChrRead(0x20); got != 0x99 {
		t.Errorf("ChrRead(0x20) = %#02x, want 0x99", got)
	}
}
