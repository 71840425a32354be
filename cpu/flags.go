package cpu

// Flag identifies a single bit of the status register P.
type Flag byte

// Status flag bit layout, bit 0 through bit 7.
const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // IRQ disable
	FlagD                  // Decimal mode (stored, never used — see package doc)
	FlagB                  // Break (only meaningful in a pushed copy of P)
	FlagU                  // Unused, conventionally 1 in pushed copies
	FlagV                  // Overflow
	FlagN                  // Negative
)

// GetFlag reports whether f is set in the status register.
func (c *CPU) GetFlag(f Flag) bool {
	return c.P&byte(f) != 0
}

// SetFlag sets or clears f in the status register.
func (c *CPU) SetFlag(f Flag, on bool) {
	if on {
		c.P |= byte(f)
	} else {
		c.P &^= byte(f)
	}
}

// setNZ sets N from bit 7 of v and Z from whether v is zero. Used after
// nearly every load/transfer/ALU result, per the instruction table.
func (c *CPU) setNZ(v byte) {
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x80 != 0)
}
