package cartridge

import "github.com/kcodes/go6502/mem"

// Bus composes flat RAM across $0000-$7FFF with a mapped cartridge across
// $8000-$FFFF, implementing cpu.Bus. Grounded on the teacher's
// bus.go/CpuRead/CpuWrite address-range dispatch, generalized from a
// fixed NES memory map to a plain ROM+RAM split.
type Bus struct {
	ram  *mem.RAM
	cart *Cartridge
}

// NewBus returns a Bus with zeroed RAM and no cartridge inserted. Until
// Insert is called, $8000-$FFFF is backed by that RAM like the rest of the
// address space.
func NewBus() *Bus {
	return &Bus{ram: mem.NewRAM()}
}

// Insert attaches a cartridge, making $8000-$FFFF resolve to its mapped
// PRG memory.
func (b *Bus) Insert(c *Cartridge) { b.cart = c }

func (b *Bus) Read(addr uint16) byte {
	if addr >= 0x8000 && b.cart != nil {
		if v, ok := b.cart.cpuRead(addr); ok {
			return v
		}
	}
	return b.ram.Read(addr)
}

func (b *Bus) Write(addr uint16, data byte) {
	if addr >= 0x8000 && b.cart != nil {
		b.cart.cpuWrite(addr, data)
		return
	}
	b.ram.Write(addr, data)
}
