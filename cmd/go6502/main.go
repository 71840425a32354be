// Command go6502 loads a 6502 program (a raw binary or an iNES ROM) and
// runs it, disassembles it, or drives it through an interactive monitor
// or windowed viewer. Grounded on oisee-z80-optimizer's cobra subcommand
// structure in cmd/z80opt/main.go.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/kcodes/go6502/cartridge"
	"github.com/kcodes/go6502/cpu"
	"github.com/kcodes/go6502/disasm"
	"github.com/kcodes/go6502/display"
	"github.com/kcodes/go6502/mem"
	"github.com/kcodes/go6502/monitor"
)

func newTraceLogger() *log.Logger {
	return log.New(os.Stdout, "", 0)
}

// timeTrack logs how long a named phase took. Used by run --time to report
// wall-clock execution time once the program stops.
func timeTrack(name string, start time.Time) {
	log.Printf("%s took %s", name, time.Since(start))
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "go6502",
		Short: "MOS 6502 CPU interpreter, disassembler, and debugger",
	}

	var loadAddr uint16
	var ines bool
	var maxSteps int
	var trace bool
	var showTime bool

	loadFlags := func(cmd *cobra.Command) {
		cmd.Flags().Uint16Var(&loadAddr, "addr", 0x8000, "load address for a raw binary (with --ines, used only as the disasm start address)")
		cmd.Flags().BoolVar(&ines, "ines", false, "treat the file as an iNES ROM image instead of a raw binary")
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program until it errors or hits --max-steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := load(args[0], loadAddr, ines)
			if err != nil {
				return err
			}
			if trace {
				c.Logger = newTraceLogger()
			}
			if showTime {
				defer timeTrack("run", time.Now())
			}

			steps := 0
			for maxSteps <= 0 || steps < maxSteps {
				if err := c.Step(); err != nil {
					return err
				}
				steps++
			}
			fmt.Printf("stopped after %d steps (--max-steps reached)\n", steps)
			return nil
		},
	}
	loadFlags(runCmd)
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print one line per retired instruction")
	runCmd.Flags().BoolVar(&showTime, "time", false, "log wall-clock execution time on exit")

	disasmCmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Disassemble a program to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := load(args[0], loadAddr, ines)
			if err != nil {
				return err
			}
			for _, line := range disasm.Range(reader, loadAddr, 0xFFFF) {
				fmt.Printf("$%04X: %s\n", line.Addr, line.Text)
			}
			return nil
		},
	}
	loadFlags(disasmCmd)

	monitorCmd := &cobra.Command{
		Use:   "monitor [file]",
		Short: "Step the program interactively in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, reader, err := load(args[0], loadAddr, ines)
			if err != nil {
				return err
			}
			return monitor.Run(c, reader)
		},
	}
	loadFlags(monitorCmd)

	displayCmd := &cobra.Command{
		Use:   "display [file]",
		Short: "Watch the program run in a windowed register/memory viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, reader, err := load(args[0], loadAddr, ines)
			if err != nil {
				return err
			}
			var runErr error
			pixelgl.Run(func() {
				runErr = display.Run(c, reader)
			})
			return runErr
		},
	}
	loadFlags(displayCmd)

	rootCmd.AddCommand(runCmd, disasmCmd, monitorCmd, displayCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load builds a reset CPU from either a raw binary loaded at loadAddr or
// an iNES ROM, along with the Reader its memory is backed by (for
// disassembly and the debug viewers).
func load(path string, loadAddr uint16, ines bool) (*cpu.CPU, disasm.Reader, error) {
	c := cpu.NewCPU()

	if ines {
		cart, err := cartridge.Load(path)
		if err != nil {
			return nil, nil, err
		}
		bus := cartridge.NewBus()
		bus.Insert(cart)
		c.ConnectBus(bus)
		c.Reset()
		return c, bus, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("go6502: %w", err)
	}

	ram := mem.NewRAM()
	ram.Load(loadAddr, data)
	ram.Write(0xFFFC, byte(loadAddr))
	ram.Write(0xFFFD, byte(loadAddr>>8))

	c.ConnectBus(ram)
	c.Reset()
	return c, ram, nil
}
