package cpu

// A Bus is the only way the core ever touches memory. It is a flat 16-bit
// address space: every address in [0, 0x10000) must be readable and
// writable, and neither operation may fail. Whatever backs an address —
// RAM, ROM, a mapped device, open bus — is entirely the implementer's
// concern; the CPU performs exactly the reads and writes its instruction
// semantics demand, in the order it demands them, and never inspects what
// is on the other side.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// readWord reads a little-endian 16-bit value starting at addr. The two
// bytes are fetched with two ordinary bus reads; callers that need page-zero
// wraparound on the high byte must compute that address themselves and call
// Read twice instead (see the indirect addressing modes).
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.read(addr)
	hi := c.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
