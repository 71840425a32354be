package cpu

// instruction is one entry of the 256-slot opcode table: a mnemonic (for
// tracing/disassembly), the addressing mode used to resolve its operand,
// the base cycle count, and the handler that applies its effects. execute
// is nil for byte values with no defined official instruction.
type instruction struct {
	name    string
	mode    AddressingMode
	cycles  byte
	execute func(*CPU) byte
}

// Mnemonic returns the table entry's name for opcode, or "???" if opcode
// is not a defined instruction. Used by the disassembler and the TUI
// debugger.
func Mnemonic(opcode byte) string {
	if n := opcodeTable[opcode].name; n != "" {
		return n
	}
	return "???"
}

// Mode returns the addressing mode a given opcode byte resolves with.
func Mode(opcode byte) AddressingMode {
	return opcodeTable[opcode].mode
}

// IsDefined reports whether opcode names an official 6502 instruction.
func IsDefined(opcode byte) bool {
	return opcodeTable[opcode].execute != nil
}

// opcodeTable is the dense 256-entry instruction lookup, keyed by opcode
// byte. Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var opcodeTable = [256]instruction{
	0x00: {"BRK", Implied, 7, opBRK}, 0x01: {"ORA", IndirectX, 6, opORA}, 0x05: {"ORA", ZeroPage, 3, opORA}, 0x06: {"ASL", ZeroPage, 5, opASL},
	0x08: {"PHP", Implied, 3, opPHP}, 0x09: {"ORA", Immediate, 2, opORA}, 0x0A: {"ASL", Accumulator, 2, opASL}, 0x0D: {"ORA", Absolute, 4, opORA}, 0x0E: {"ASL", Absolute, 6, opASL},

	0x10: {"BPL", Relative, 2, opBPL}, 0x11: {"ORA", IndirectY, 5, opORA}, 0x15: {"ORA", ZeroPageX, 4, opORA}, 0x16: {"ASL", ZeroPageX, 6, opASL},
	0x18: {"CLC", Implied, 2, opCLC}, 0x19: {"ORA", AbsoluteY, 4, opORA}, 0x1D: {"ORA", AbsoluteX, 4, opORA}, 0x1E: {"ASL", AbsoluteX, 7, opASL},

	0x20: {"JSR", Absolute, 6, opJSR}, 0x21: {"AND", IndirectX, 6, opAND}, 0x24: {"BIT", ZeroPage, 3, opBIT}, 0x25: {"AND", ZeroPage, 3, opAND}, 0x26: {"ROL", ZeroPage, 5, opROL},
	0x28: {"PLP", Implied, 4, opPLP}, 0x29: {"AND", Immediate, 2, opAND}, 0x2A: {"ROL", Accumulator, 2, opROL}, 0x2C: {"BIT", Absolute, 4, opBIT}, 0x2D: {"AND", Absolute, 4, opAND}, 0x2E: {"ROL", Absolute, 6, opROL},

	0x30: {"BMI", Relative, 2, opBMI}, 0x31: {"AND", IndirectY, 5, opAND}, 0x35: {"AND", ZeroPageX, 4, opAND}, 0x36: {"ROL", ZeroPageX, 6, opROL},
	0x38: {"SEC", Implied, 2, opSEC}, 0x39: {"AND", AbsoluteY, 4, opAND}, 0x3D: {"AND", AbsoluteX, 4, opAND}, 0x3E: {"ROL", AbsoluteX, 7, opROL},

	0x40: {"RTI", Implied, 6, opRTI}, 0x41: {"EOR", IndirectX, 6, opEOR}, 0x45: {"EOR", ZeroPage, 3, opEOR}, 0x46: {"LSR", ZeroPage, 5, opLSR},
	0x48: {"PHA", Implied, 3, opPHA}, 0x49: {"EOR", Immediate, 2, opEOR}, 0x4A: {"LSR", Accumulator, 2, opLSR}, 0x4C: {"JMP", Absolute, 3, opJMP}, 0x4D: {"EOR", Absolute, 4, opEOR}, 0x4E: {"LSR", Absolute, 6, opLSR},

	0x50: {"BVC", Relative, 2, opBVC}, 0x51: {"EOR", IndirectY, 5, opEOR}, 0x55: {"EOR", ZeroPageX, 4, opEOR}, 0x56: {"LSR", ZeroPageX, 6, opLSR},
	0x58: {"CLI", Implied, 2, opCLI}, 0x59: {"EOR", AbsoluteY, 4, opEOR}, 0x5D: {"EOR", AbsoluteX, 4, opEOR}, 0x5E: {"LSR", AbsoluteX, 7, opLSR},

	0x60: {"RTS", Implied, 6, opRTS}, 0x61: {"ADC", IndirectX, 6, opADC}, 0x65: {"ADC", ZeroPage, 3, opADC}, 0x66: {"ROR", ZeroPage, 5, opROR},
	0x68: {"PLA", Implied, 4, opPLA}, 0x69: {"ADC", Immediate, 2, opADC}, 0x6A: {"ROR", Accumulator, 2, opROR}, 0x6C: {"JMP", Indirect, 5, opJMP}, 0x6D: {"ADC", Absolute, 4, opADC}, 0x6E: {"ROR", Absolute, 6, opROR},

	0x70: {"BVS", Relative, 2, opBVS}, 0x71: {"ADC", IndirectY, 5, opADC}, 0x75: {"ADC", ZeroPageX, 4, opADC}, 0x76: {"ROR", ZeroPageX, 6, opROR},
	0x78: {"SEI", Implied, 2, opSEI}, 0x79: {"ADC", AbsoluteY, 4, opADC}, 0x7D: {"ADC", AbsoluteX, 4, opADC}, 0x7E: {"ROR", AbsoluteX, 7, opROR},

	0x81: {"STA", IndirectX, 6, opSTA}, 0x84: {"STY", ZeroPage, 3, opSTY}, 0x85: {"STA", ZeroPage, 3, opSTA}, 0x86: {"STX", ZeroPage, 3, opSTX},
	0x88: {"DEY", Implied, 2, opDEY}, 0x8A: {"TXA", Implied, 2, opTXA}, 0x8C: {"STY", Absolute, 4, opSTY}, 0x8D: {"STA", Absolute, 4, opSTA}, 0x8E: {"STX", Absolute, 4, opSTX},

	0x90: {"BCC", Relative, 2, opBCC}, 0x91: {"STA", IndirectY, 6, opSTA}, 0x94: {"STY", ZeroPageX, 4, opSTY}, 0x95: {"STA", ZeroPageX, 4, opSTA}, 0x96: {"STX", ZeroPageY, 4, opSTX},
	0x98: {"TYA", Implied, 2, opTYA}, 0x99: {"STA", AbsoluteY, 5, opSTA}, 0x9A: {"TXS", Implied, 2, opTXS}, 0x9D: {"STA", AbsoluteX, 5, opSTA},

	0xA0: {"LDY", Immediate, 2, opLDY}, 0xA1: {"LDA", IndirectX, 6, opLDA}, 0xA2: {"LDX", Immediate, 2, opLDX}, 0xA4: {"LDY", ZeroPage, 3, opLDY}, 0xA5: {"LDA", ZeroPage, 3, opLDA}, 0xA6: {"LDX", ZeroPage, 3, opLDX},
	0xA8: {"TAY", Implied, 2, opTAY}, 0xA9: {"LDA", Immediate, 2, opLDA}, 0xAA: {"TAX", Implied, 2, opTAX}, 0xAC: {"LDY", Absolute, 4, opLDY}, 0xAD: {"LDA", Absolute, 4, opLDA}, 0xAE: {"LDX", Absolute, 4, opLDX},

	0xB0: {"BCS", Relative, 2, opBCS}, 0xB1: {"LDA", IndirectY, 5, opLDA}, 0xB4: {"LDY", ZeroPageX, 4, opLDY}, 0xB5: {"LDA", ZeroPageX, 4, opLDA}, 0xB6: {"LDX", ZeroPageY, 4, opLDX},
	0xB8: {"CLV", Implied, 2, opCLV}, 0xB9: {"LDA", AbsoluteY, 4, opLDA}, 0xBA: {"TSX", Implied, 2, opTSX}, 0xBC: {"LDY", AbsoluteX, 4, opLDY}, 0xBD: {"LDA", AbsoluteX, 4, opLDA}, 0xBE: {"LDX", AbsoluteY, 4, opLDX},

	0xC0: {"CPY", Immediate, 2, opCPY}, 0xC1: {"CMP", IndirectX, 6, opCMP}, 0xC4: {"CPY", ZeroPage, 3, opCPY}, 0xC5: {"CMP", ZeroPage, 3, opCMP}, 0xC6: {"DEC", ZeroPage, 5, opDEC},
	0xC8: {"INY", Implied, 2, opINY}, 0xC9: {"CMP", Immediate, 2, opCMP}, 0xCA: {"DEX", Implied, 2, opDEX}, 0xCC: {"CPY", Absolute, 4, opCPY}, 0xCD: {"CMP", Absolute, 4, opCMP}, 0xCE: {"DEC", Absolute, 6, opDEC},

	0xD0: {"BNE", Relative, 2, opBNE}, 0xD1: {"CMP", IndirectY, 5, opCMP}, 0xD5: {"CMP", ZeroPageX, 4, opCMP}, 0xD6: {"DEC", ZeroPageX, 6, opDEC},
	0xD8: {"CLD", Implied, 2, opCLD}, 0xD9: {"CMP", AbsoluteY, 4, opCMP}, 0xDD: {"CMP", AbsoluteX, 4, opCMP}, 0xDE: {"DEC", AbsoluteX, 7, opDEC},

	0xE0: {"CPX", Immediate, 2, opCPX}, 0xE1: {"SBC", IndirectX, 6, opSBC}, 0xE4: {"CPX", ZeroPage, 3, opCPX}, 0xE5: {"SBC", ZeroPage, 3, opSBC}, 0xE6: {"INC", ZeroPage, 5, opINC},
	0xE8: {"INX", Implied, 2, opINX}, 0xE9: {"SBC", Immediate, 2, opSBC}, 0xEA: {"NOP", Implied, 2, opNOP}, 0xEC: {"CPX", Absolute, 4, opCPX}, 0xED: {"SBC", Absolute, 4, opSBC}, 0xEE: {"INC", Absolute, 6, opINC},

	0xF0: {"BEQ", Relative, 2, opBEQ}, 0xF1: {"SBC", IndirectY, 5, opSBC}, 0xF5: {"SBC", ZeroPageX, 4, opSBC}, 0xF6: {"INC", ZeroPageX, 6, opINC},
	0xF8: {"SED", Implied, 2, opSED}, 0xF9: {"SBC", AbsoluteY, 4, opSBC}, 0xFD: {"SBC", AbsoluteX, 4, opSBC}, 0xFE: {"INC", AbsoluteX, 7, opINC},
}
