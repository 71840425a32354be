// Package monitor is an interactive terminal step-debugger for the cpu
// package: one instruction retires per keypress, with the current page of
// memory, register file, and decoded instruction all visible at once.
// Grounded on hejops-gone/cpu/debugger.go's bubbletea model.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/kcodes/go6502/cpu"
	"github.com/kcodes/go6502/disasm"
)

// model is the bubbletea model driving the monitor's TUI.
type model struct {
	cpu *cpu.CPU
	mem disasm.Reader

	prevPC uint16
	err    error
	done   bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n":
		m.prevPC = m.cpu.PC
		if err := m.cpu.Step(); err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// renderPage renders the 16-byte row of memory starting at start,
// bracketing the byte at the current PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.mem.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

// pageTable renders up to five 16-byte rows of memory surrounding the
// current PC (rows that would fall below $0000 are skipped).
func (m model) pageTable() string {
	base := m.cpu.PC &^ 0x0F
	var rows []string
	for i := -2; i <= 2; i++ {
		start := int32(base) + int32(i*16)
		if start < 0 || start > 0xFFFF {
			continue
		}
		rows = append(rows, m.renderPage(uint16(start)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	flagRow := "N V U B D I Z C\n"
	for _, f := range []cpu.Flag{cpu.FlagN, cpu.FlagV, cpu.FlagU, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC} {
		if m.cpu.GetFlag(f) {
			flagRow += "/ "
		} else {
			flagRow += "  "
		}
	}
	return fmt.Sprintf(`
 PC: %04X (was %04X)
  A: %02X
  X: %02X
  Y: %02X
 SP: %02X
CYC: %d
%s`,
		m.cpu.PC, m.prevPC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.cpu.Cycles, flagRow)
}

func (m model) View() string {
	opcode := m.mem.Read(m.cpu.PC)
	current := spew.Sdump(struct {
		Opcode   byte
		Mnemonic string
		Mode     cpu.AddressingMode
	}{opcode, cpu.Mnemonic(opcode), cpu.Mode(opcode)})

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		current,
		"space/n: step   q: quit",
	)

	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, fmt.Sprintf("\nstopped: %v", m.err))
	}
	return body
}

// Run starts the interactive monitor against an already-reset CPU. mem
// must be the same backing store the CPU is wired to, so the memory
// viewer and the CPU stay in sync.
func Run(c *cpu.CPU, mem disasm.Reader) error {
	_, err := tea.NewProgram(model{cpu: c, mem: mem}).Run()
	return err
}
