// Package mem provides a flat, fully-backed 64KB RAM implementation of
// cpu.Bus — the simplest possible memory for driving the CPU core in
// isolation (tests, the headless runner, the TUI debugger).
package mem

// RAM is a flat 64KB address space with no mirroring and no device
// mapping: every address in [0, 0x10000) is backed by its own byte. This
// intentionally backs the full 16-bit range, unlike the teacher's 8KB
// array that silently aliased addresses above $1FFF (see DESIGN.md).
type RAM [65536]byte

// NewRAM returns a zeroed 64KB RAM.
func NewRAM() *RAM {
	r := RAM{}
	return &r
}

// Read returns the byte at addr. Every address is mapped, so there is no
// failure mode.
func (r *RAM) Read(addr uint16) byte { return r[addr] }

// Write stores data at addr.
func (r *RAM) Write(addr uint16, data byte) { r[addr] = data }

// Load copies program into RAM starting at addr, matching the teacher's
// Bus.LoadBytes helper.
func (r *RAM) Load(addr uint16, program []byte) {
	for i, b := range program {
		r[int(addr)+i] = b
	}
}
