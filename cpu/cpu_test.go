package cpu

import (
	"testing"

	"github.com/kcodes/go6502/mem"
)

// newTestCPU returns a CPU wired to fresh RAM, with program loaded at
// $8000 and the reset vector pointed at it.
func newTestCPU(program []byte) (*CPU, *mem.RAM) {
	ram := mem.NewRAM()
	ram.Load(0x8000, program)
	ram.Write(0xFFFC, 0x00)
	ram.Write(0xFFFD, 0x80)

	c := NewCPU()
	c.ConnectBus(ram)
	c.Reset()
	return c, ram
}

func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

// --- end-to-end scenarios -------------------------------------------------

func TestImmediateLDA(t *testing.T) {
	c, _ := newTestCPU([]byte{0xA9, 0x42}) // LDA #$42
	step(t, c, 1)

	if c.A != 0x42 {
		t.Errorf("A = %#02x, want %#02x", c.A, 0x42)
	}
	if c.GetFlag(FlagZ) || c.GetFlag(FlagN) {
		t.Errorf("Z/N flags wrong for a positive nonzero load")
	}
}

func TestADCProducesCarryOut(t *testing.T) {
	// LDA #$FF; ADC #$01 -> A=$00, C=1, Z=1, N=0
	c, _ := newTestCPU([]byte{0xA9, 0xFF, 0x69, 0x01})
	step(t, c, 2)

	if c.A != 0x00 {
		t.Errorf("A = %#02x, want 0", c.A)
	}
	if !c.GetFlag(FlagC) {
		t.Error("expected carry out")
	}
	if !c.GetFlag(FlagZ) {
		t.Error("expected zero flag")
	}
}

func TestADCSignedOverflow(t *testing.T) {
	// LDA #$7F; ADC #$01 -> A=$80, V=1 (positive+positive=negative), C=0
	c, _ := newTestCPU([]byte{0xA9, 0x7F, 0x69, 0x01})
	step(t, c, 2)

	if c.A != 0x80 {
		t.Errorf("A = %#02x, want %#02x", c.A, 0x80)
	}
	if !c.GetFlag(FlagV) {
		t.Error("expected signed overflow")
	}
	if c.GetFlag(FlagC) {
		t.Error("did not expect carry out")
	}
	if !c.GetFlag(FlagN) {
		t.Error("expected negative result")
	}
}

func TestBranchTakenBackwards(t *testing.T) {
	// At $8000: LDX #$00 ; loop: INX ; CPX #$03 ; BNE loop ; BRK
	prog := []byte{
		0xA2, 0x00, // LDX #$00
		0xE8,       // loop: INX
		0xE0, 0x03, // CPX #$03
		0xD0, 0xFB, // BNE loop (back 5 bytes)
		0x00, // BRK
	}
	c, _ := newTestCPU(prog)

	step(t, c, 2) // LDX, first INX
	for c.X != 0x03 {
		step(t, c, 2) // CPX, BNE
		step(t, c, 1) // INX
	}
	if c.X != 0x03 {
		t.Fatalf("X = %#02x, want 3 after loop", c.X)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	// $8000: JSR $8004 ; (never reached: BRK at $8003) ; $8004: RTS
	prog := []byte{
		0x20, 0x04, 0x80, // JSR $8004
		0x00, // BRK (skipped)
	}
	c, ram := newTestCPU(prog)
	ram.Write(0x8004, 0x60) // RTS

	step(t, c, 1) // JSR
	if c.PC != 0x8004 {
		t.Fatalf("PC after JSR = %#04x, want $8004", c.PC)
	}

	step(t, c, 1) // RTS
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#04x, want $8003 (the byte after JSR)", c.PC)
	}
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	// Pointer at $02FF; real hardware reads the high byte from $0200, not
	// $0300, because the low-byte fetch doesn't carry into the next page.
	c, ram := newTestCPU([]byte{0x6C, 0xFF, 0x02}) // JMP ($02FF)
	ram.Write(0x02FF, 0x00)
	ram.Write(0x0300, 0x12) // if the bug were absent, PC would become $1200
	ram.Write(0x0200, 0x34) // with the bug, PC becomes $3400

	step(t, c, 1)
	if c.PC != 0x3400 {
		t.Errorf("PC = %#04x, want $3400 (page-wrap bug reproduced)", c.PC)
	}
}

// --- universal invariants --------------------------------------------------

func TestZeroPageIndexedWraparound(t *testing.T) {
	// LDX #$01; LDA $FF,X must read $00, not $0100.
	c, ram := newTestCPU([]byte{0xA2, 0x01, 0xB5, 0xFF})
	ram.Write(0x0000, 0x55)
	ram.Write(0x0100, 0xAA)

	step(t, c, 2)
	if c.A != 0x55 {
		t.Errorf("A = %#02x, want %#02x (zero-page wrap)", c.A, 0x55)
	}
}

func TestIndirectXPageZeroPointerWraparound(t *testing.T) {
	// Pointer byte $FE plus X=$01 gives $FF; its two pointer bytes must be
	// read from $FF/$00, not $FF/$100.
	c, ram := newTestCPU([]byte{0xA2, 0x01, 0xA1, 0xFE}) // LDX #1; LDA ($FE,X)
	ram.Write(0x00FF, 0x00)                              // ($FE+1) -> $FF, low byte of pointer
	ram.Write(0x0000, 0x10)                              // ($FF+1)&FF -> $00, high byte of pointer
	ram.Write(0x1000, 0x77)

	step(t, c, 2)
	if c.A != 0x77 {
		t.Errorf("A = %#02x, want %#02x", c.A, 0x77)
	}
}

func TestStackPushPullRoundTrip(t *testing.T) {
	c, _ := newTestCPU([]byte{0xA9, 0x37, 0x48, 0xA9, 0x00, 0x68}) // LDA #$37; PHA; LDA #$00; PLA
	sp := c.SP

	step(t, c, 4)
	if c.A != 0x37 {
		t.Errorf("A = %#02x, want %#02x after PLA", c.A, 0x37)
	}
	if c.SP != sp {
		t.Errorf("SP = %#02x, want %#02x (balanced push/pull)", c.SP, sp)
	}
}

func TestBRKPushesPCPlusOneAndForcesBAndU(t *testing.T) {
	c, ram := newTestCPU([]byte{0x00, 0xEA}) // BRK ; NOP
	ram.Write(0xFFFE, 0x00)
	ram.Write(0xFFFF, 0x90)

	step(t, c, 1)

	pushedP := ram.Read(0x0100 | uint16(c.SP+1))
	pushedPCLo := ram.Read(0x0100 | uint16(c.SP+2))
	pushedPCHi := ram.Read(0x0100 | uint16(c.SP+3))
	pushedPC := uint16(pushedPCHi)<<8 | uint16(pushedPCLo)

	if pushedPC != 0x8002 {
		t.Errorf("pushed PC = %#04x, want $8002 (PC+1)", pushedPC)
	}
	if pushedP&byte(FlagB) == 0 || pushedP&byte(FlagU) == 0 {
		t.Errorf("pushed P = %#02x, want B and U both set", pushedP)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC = %#04x, want $9000 (IRQ/BRK vector)", c.PC)
	}
}

// --- boundary behaviors -----------------------------------------------------

func TestINXWrapsFFToZero(t *testing.T) {
	c, _ := newTestCPU([]byte{0xA2, 0xFF, 0xE8}) // LDX #$FF; INX
	step(t, c, 2)

	if c.X != 0x00 {
		t.Errorf("X = %#02x, want 0", c.X)
	}
	if !c.GetFlag(FlagZ) {
		t.Error("expected zero flag")
	}
}

func TestASLSetsCarryFromTopBit(t *testing.T) {
	c, _ := newTestCPU([]byte{0xA9, 0x80, 0x0A}) // LDA #$80; ASL A
	step(t, c, 2)

	if c.A != 0x00 {
		t.Errorf("A = %#02x, want 0", c.A)
	}
	if !c.GetFlag(FlagC) {
		t.Error("expected carry from old bit 7")
	}
}

func TestCMPSetsFlagsWithoutModifyingA(t *testing.T) {
	// LDA #$10; CMP #$20 -> A < M, so C clears, N sets (0x10-0x20 = 0xF0)
	c, _ := newTestCPU([]byte{0xA9, 0x10, 0xC9, 0x20})
	step(t, c, 2)

	if c.A != 0x10 {
		t.Errorf("A = %#02x, want %#02x (CMP must not modify A)", c.A, 0x10)
	}
	if c.GetFlag(FlagC) {
		t.Error("did not expect carry (A < M)")
	}
	if !c.GetFlag(FlagN) {
		t.Error("expected negative flag from 0x10-0x20")
	}
}

func TestIllegalOpcodeReturnsError(t *testing.T) {
	c, _ := newTestCPU([]byte{0x02}) // undefined opcode
	err := c.Step()
	if err == nil {
		t.Fatal("expected an error for an illegal opcode")
	}
	var illegal *ErrIllegalOpcode
	if !asIllegal(err, &illegal) {
		t.Fatalf("error = %v, want *ErrIllegalOpcode", err)
	}
	if illegal.Opcode != 0x02 {
		t.Errorf("Opcode = %#02x, want %#02x", illegal.Opcode, 0x02)
	}
}

func asIllegal(err error, target **ErrIllegalOpcode) bool {
	if e, ok := err.(*ErrIllegalOpcode); ok {
		*target = e
		return true
	}
	return false
}
