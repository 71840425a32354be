package cartridge

// mapper000 implements NROM: a fixed 16KB or 32KB PRG ROM window with no
// bank switching. A 16KB cartridge is mirrored across both halves of
// $8000-$FFFF; a 32KB cartridge fills it directly. Grounded on the
// teacher's nes/mapper000.go.
type mapper000 struct {
	prgChunks byte
	chrChunks byte
}

func newMapper000(prgChunks, chrChunks byte) *mapper000 {
	return &mapper000{prgChunks: prgChunks, chrChunks: chrChunks}
}

func (m *mapper000) CPUMapRead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.prgChunks == 1 {
		return uint32(addr) & 0x3FFF, true
	}
	return uint32(addr) & 0x7FFF, true
}

func (m *mapper000) CPUMapWrite(addr uint16) (uint32, bool) {
	// NROM PRG is ROM: CPU writes to the cartridge window are ignored.
	return 0, false
}
