package cpu

// AddressingMode identifies how an instruction's operand bytes are turned
// into an effective address (or, for Implied/Accumulator, how the "operand"
// is implicit in the opcode itself).
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand; operand is A or nothing
	Accumulator                       // no operand; A itself is the target
	Immediate                         // 1 byte: the operand's own address
	ZeroPage                         // 1 byte: op0
	ZeroPageX                        // 1 byte: (op0+X) & 0xFF
	ZeroPageY                        // 1 byte: (op0+Y) & 0xFF
	Relative                          // 1 byte: signed displacement from PC
	Absolute                          // 2 bytes, LSB first
	AbsoluteX                        // 2 bytes + X, may cross a page
	AbsoluteY                        // 2 bytes + Y, may cross a page
	Indirect                          // 2 bytes -> 16-bit pointer (JMP only)
	IndirectX                        // 1 byte, indexed before the indirection
	IndirectY                        // 1 byte, indexed after the indirection, may cross a page
)

// resolve consumes however many operand bytes this mode requires (advancing
// c.PC), sets c.AddrAbs (or, for Relative, c.AddrRel) to the resolved
// address/displacement, and returns any extra cycle earned by a page
// crossing. Branch-taken cycles are charged by the branch instructions
// themselves, since that depends on whether the branch condition holds.
func (m AddressingMode) resolve(c *CPU) byte {
	switch m {
	case Implied:
		return 0

	case Accumulator:
		c.Fetched = c.A
		return 0

	case Immediate:
		c.AddrAbs = c.PC
		c.PC++
		return 0

	case ZeroPage:
		c.AddrAbs = uint16(c.read(c.PC))
		c.PC++
		return 0

	case ZeroPageX:
		c.AddrAbs = uint16(c.read(c.PC)+c.X) & 0x00FF
		c.PC++
		return 0

	case ZeroPageY:
		c.AddrAbs = uint16(c.read(c.PC)+c.Y) & 0x00FF
		c.PC++
		return 0

	case Relative:
		disp := c.read(c.PC)
		c.PC++
		c.AddrRel = int16(int8(disp))
		return 0

	case Absolute:
		c.AddrAbs = c.readWord(c.PC)
		c.PC += 2
		return 0

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		c.AddrAbs = base + uint16(c.X)
		return pageCrossCycle(base, c.AddrAbs)

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		c.AddrAbs = base + uint16(c.Y)
		return pageCrossCycle(base, c.AddrAbs)

	case Indirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		// 6502 hardware bug: if the pointer's low byte is $FF, the high
		// byte is read from the same page instead of crossing into the
		// next one.
		lo := c.read(ptr)
		var hi byte
		if ptr&0x00FF == 0x00FF {
			hi = c.read(ptr & 0xFF00)
		} else {
			hi = c.read(ptr + 1)
		}
		c.AddrAbs = uint16(hi)<<8 | uint16(lo)
		return 0

	case IndirectX:
		ptr := (c.read(c.PC) + c.X) & 0x00FF
		c.PC++
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr+1) & 0x00FF) // zero-page wraparound
		c.AddrAbs = uint16(hi)<<8 | uint16(lo)
		return 0

	case IndirectY:
		ptr := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr+1) & 0x00FF) // zero-page wraparound
		base := uint16(hi)<<8 | uint16(lo)
		c.AddrAbs = base + uint16(c.Y)
		return pageCrossCycle(base, c.AddrAbs)

	default:
		return 0
	}
}

// pageCrossCycle returns 1 if base and resolved fall in different $100
// pages, 0 otherwise — the extra cycle real hardware spends on an indexed
// address that crosses a page boundary.
func pageCrossCycle(base, resolved uint16) byte {
	if base&0xFF00 != resolved&0xFF00 {
		return 1
	}
	return 0
}
