// Package disasm renders 6502 machine code as human-readable assembly
// text, driven entirely by cpu's exported Mnemonic/Mode opcode table.
// Grounded on the teacher's nes/cpuDisassembler.go, generalized from a
// bus-attached method to a plain byte-slice reader so it can disassemble
// a cartridge image without a live CPU.
package disasm

import (
	"bytes"
	"fmt"

	"github.com/kcodes/go6502/cpu"
)

// Reader is anything disasm can pull instruction bytes from. cpu.Bus
// satisfies it; so does a plain byte slice via SliceReader.
type Reader interface {
	Read(addr uint16) byte
}

// SliceReader adapts a byte slice, indexed from a base address, to Reader.
type SliceReader struct {
	Base uint16
	Data []byte
}

func (s SliceReader) Read(addr uint16) byte {
	i := int(addr) - int(s.Base)
	if i < 0 || i >= len(s.Data) {
		return 0
	}
	return s.Data[i]
}

// Line is one disassembled instruction: the address it starts at and its
// rendered text.
type Line struct {
	Addr uint16
	Text string
}

// Range disassembles every instruction starting within [start, end],
// in address order. An addressing mode that would read past end still
// reads whatever Reader returns for those addresses; callers disassembling
// a bounded ROM image should pass a Reader that returns 0 out of range.
func Range(r Reader, start, end uint16) []Line {
	var lines []Line
	addr := uint32(start)

	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := r.Read(uint16(addr))
		addr++

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s ", cpu.Mnemonic(opcode))

		switch cpu.Mode(opcode) {
		case cpu.Implied, cpu.Accumulator:
			buf.WriteString("{IMP}")
		case cpu.Immediate:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "#$%02X {IMM}", v)
		case cpu.Relative:
			disp := r.Read(uint16(addr))
			addr++
			target := uint16(addr) + uint16(int16(int8(disp)))
			fmt.Fprintf(&buf, "$%02X [$%04X] {REL}", disp, target)
		case cpu.ZeroPage:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X {ZP0}", v)
		case cpu.ZeroPageX:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X,X {ZPX}", v)
		case cpu.ZeroPageY:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X,Y {ZPY}", v)
		case cpu.Absolute:
			lo := r.Read(uint16(addr))
			addr++
			hi := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X {ABS}", uint16(hi)<<8|uint16(lo))
		case cpu.AbsoluteX:
			lo := r.Read(uint16(addr))
			addr++
			hi := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X,X {ABX}", uint16(hi)<<8|uint16(lo))
		case cpu.AbsoluteY:
			lo := r.Read(uint16(addr))
			addr++
			hi := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X,Y {ABY}", uint16(hi)<<8|uint16(lo))
		case cpu.Indirect:
			lo := r.Read(uint16(addr))
			addr++
			hi := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "($%04X) {IND}", uint16(hi)<<8|uint16(lo))
		case cpu.IndirectX:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "($%02X,X) {IZX}", v)
		case cpu.IndirectY:
			v := r.Read(uint16(addr))
			addr++
			fmt.Fprintf(&buf, "($%02X),Y {IZY}", v)
		}

		lines = append(lines, Line{Addr: lineAddr, Text: buf.String()})
	}

	return lines
}
