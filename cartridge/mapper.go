package cartridge

import "fmt"

// Mapper translates CPU addresses in $8000-$FFFF into offsets within a
// cartridge's PRG ROM/RAM. Grounded on the teacher's nes/mapper.go
// interface, trimmed to the CPU side only since this core has no PPU.
type Mapper interface {
	// CPUMapRead returns the PRG offset for addr and true if addr is
	// mapped to cartridge memory at all.
	CPUMapRead(addr uint16) (uint32, bool)
	// CPUMapWrite returns the PRG offset addr would write to, and
	// whether the mapper accepts writes there.
	CPUMapWrite(addr uint16) (uint32, bool)
}

// NewMapper constructs the Mapper for a given iNES mapper ID. Only mapper
// 0 (NROM) is implemented; anything else is rejected rather than silently
// mis-mapped.
func NewMapper(id byte, prgChunks, chrChunks byte) (Mapper, error) {
	switch id {
	case 0:
		return newMapper000(prgChunks, chrChunks), nil
	default:
		return nil, fmt.Errorf("cartridge: unsupported mapper %d", id)
	}
}
