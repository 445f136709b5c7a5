// This file is part of ls8.
//
// ls8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ls8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ls8.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/disassembly"
	"github.com/jetsetilly/ls8/govern"
	"github.com/jetsetilly/ls8/hardware"
	"github.com/jetsetilly/ls8/hardware/cpu"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
	"github.com/jetsetilly/ls8/logger"
	"github.com/jetsetilly/ls8/profile"
)

// CommandError is the pattern for errors caused by bad monitor input.
const CommandError = "monitor: %v"

// Monitor is an interactive front end to an LS8.
type Monitor struct {
	ls8 *hardware.LS8

	dsm  *disassembly.Disassembly
	prof *profile.Profile

	breakpoints map[uint16]bool

	output io.Writer

	// Interactive causes a prompt to be printed before every command
	Interactive bool

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The monitor takes ownership of the instruction hook of the LS8.
func NewMonitor(ls8 *hardware.LS8, output io.Writer) *Monitor {
	mon := &Monitor{
		ls8:         ls8,
		prof:        profile.NewProfile(),
		breakpoints: make(map[uint16]bool),
		output:      output,
	}
	mon.refresh()

	ls8.SetInstructionHook(func(r execution.Result) {
		mon.dsm.ExecutedEntry(r)
		mon.prof.Record(r)
	})

	return mon
}

// refresh the disassembly from the current contents of memory.
func (mon *Monitor) refresh() {
	n := len(mon.ls8.Program.Data)
	if n == 0 {
		n = addresses.Capacity
	}

	// memory reads can't fail for addresses in range
	mon.dsm, _ = disassembly.FromMemory(mon.ls8.Mem, n)
}

func (mon *Monitor) prompt() string {
	return fmt.Sprintf("[%s] %s > ", mon.ls8.CPU.PC, mon.ls8.State())
}

// Run reads and executes commands until the QUIT command or until the input
// is exhausted. Errors caused by commands are printed and do not end the
// monitor.
func (mon *Monitor) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)

	for !mon.quit {
		if mon.Interactive {
			fmt.Fprint(mon.output, mon.prompt())
		}

		if !scanner.Scan() {
			break
		}

		err := mon.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(mon.output, "* %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

// parseNumber accepts decimal and 0x prefixed hexadecimal numbers.
func parseNumber(s string, max uint64) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil || v > max {
		return 0, curated.Errorf(CommandError, fmt.Sprintf("bad number (%s)", s))
	}
	return v, nil
}

func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, uint64(addresses.Memtop))
	return uint16(v), err
}

// Execute a single command line.
func (mon *Monitor) Execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd, ok := lookupCommand(tokens[0])
	if !ok {
		return curated.Errorf(CommandError, fmt.Sprintf("unknown command (%s)", tokens[0]))
	}
	args := tokens[1:]

	switch cmd {
	case cmdStep:
		n := uint64(1)
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0], 0xffff)
			if err != nil {
				return err
			}
		}
		return mon.step(int(n))

	case cmdRun:
		return mon.run()

	case cmdRegs:
		c := mon.ls8.CPU
		fmt.Fprintln(mon.output, c.String())
		fmt.Fprintf(mon.output, "interrupts enabled=%t pending=%08b halted=%t\n",
			c.InterruptsEnabled, mon.ls8.Interrupts.Pending(), c.Halted)
		if c.Fault != nil {
			fmt.Fprintf(mon.output, "fault: %v\n", c.Fault)
		}

	case cmdStack:
		s := mon.ls8.CPU.StackContents()
		if len(s) == 0 {
			fmt.Fprintln(mon.output, "stack is empty")
		}
		sp := mon.ls8.CPU.R[cpu.SP].Value()
		for i, v := range s {
			fmt.Fprintf(mon.output, "%#02x: %#02x\n", int(sp)+i, v)
		}

	case cmdMem:
		address := uint16(0)
		n := uint64(16)
		var err error
		if len(args) > 0 {
			address, err = parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			n, err = parseNumber(args[1], addresses.Capacity)
			if err != nil {
				return err
			}
		}
		mon.dumpMemory(address, int(n))

	case cmdPoke:
		if len(args) < 2 {
			return curated.Errorf(CommandError, "POKE requires an address and a value")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		v, err := parseNumber(args[1], 0xff)
		if err != nil {
			return err
		}
		err = mon.ls8.Mem.Poke(address, uint8(v))
		if err != nil {
			return err
		}
		mon.refresh()

	case cmdDisasm:
		address := mon.ls8.CPU.PC.Address()
		n := uint64(8)
		var err error
		if len(args) > 0 {
			address, err = parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			n, err = parseNumber(args[1], addresses.Capacity)
			if err != nil {
				return err
			}
		}
		mon.dsm.WriteRange(mon.output, disassembly.WriteAttr{ByteCode: true, Executed: true}, address, int(n))

	case cmdBreak:
		if len(args) == 0 {
			mon.listBreakpoints()
			return nil
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		mon.breakpoints[address] = true
		fmt.Fprintf(mon.output, "breakpoint at %#02x\n", address)

	case cmdClear:
		if len(args) == 0 {
			clear(mon.breakpoints)
			fmt.Fprintln(mon.output, "breakpoints cleared")
			return nil
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		if !mon.breakpoints[address] {
			return curated.Errorf(CommandError, fmt.Sprintf("no breakpoint at %#02x", address))
		}
		delete(mon.breakpoints, address)

	case cmdInt:
		if len(args) == 0 {
			return curated.Errorf(CommandError, "INT requires an interrupt line")
		}
		line, err := parseNumber(args[0], interrupts.NumLines-1)
		if err != nil {
			return err
		}
		mon.ls8.Interrupts.Raise(int(line))

	case cmdKey:
		if len(args) == 0 || len(args[0]) != 1 {
			return curated.Errorf(CommandError, "KEY requires a single character")
		}
		mon.ls8.Interrupts.RaiseKey(args[0][0])

	case cmdReset:
		mon.ls8.Reset()
		mon.prof.Reset()
		mon.refresh()
		fmt.Fprintln(mon.output, "machine reset")

	case cmdProfile:
		if mon.prof.Total() == 0 {
			fmt.Fprintln(mon.output, "no instructions executed")
			return nil
		}
		fmt.Fprint(mon.output, mon.prof.Table())

	case cmdLog:
		n := uint64(10)
		if len(args) > 0 {
			var err error
			n, err = parseNumber(args[0], 0xffff)
			if err != nil {
				return err
			}
		}
		logger.Tail(mon.output, int(n))

	case cmdMemviz:
		return mon.memviz(args)

	case cmdHelp:
		writeHelp(mon.output)

	case cmdQuit:
		mon.quit = true
	}

	return nil
}

func (mon *Monitor) step(n int) error {
	for i := 0; i < n; i++ {
		if mon.ls8.CPU.Halted {
			fmt.Fprintln(mon.output, "cpu halted (RESET to restart)")
			return nil
		}

		err := mon.ls8.Step()
		fmt.Fprintln(mon.output, mon.ls8.CPU.LastResult.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func (mon *Monitor) run() error {
	if mon.ls8.CPU.Halted {
		fmt.Fprintln(mon.output, "cpu halted (RESET to restart)")
		return nil
	}

	var hit bool
	err := mon.ls8.Run(func() (govern.State, error) {
		if mon.breakpoints[mon.ls8.CPU.PC.Address()] {
			hit = true
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	switch {
	case hit:
		fmt.Fprintf(mon.output, "break at %s\n", mon.ls8.CPU.PC)
	case mon.ls8.CPU.Halted:
		fmt.Fprintf(mon.output, "halted at %#02x\n", mon.ls8.CPU.LastResult.Address)
	default:
		fmt.Fprintf(mon.output, "stopped at %s\n", mon.ls8.CPU.PC)
	}

	return nil
}

func (mon *Monitor) listBreakpoints() {
	if len(mon.breakpoints) == 0 {
		fmt.Fprintln(mon.output, "no breakpoints")
		return
	}

	b := make([]int, 0, len(mon.breakpoints))
	for a := range mon.breakpoints {
		b = append(b, int(a))
	}
	sort.Ints(b)

	for _, a := range b {
		fmt.Fprintf(mon.output, "%#02x\n", a)
	}
}

// dumpMemory writes n bytes of memory, 16 bytes to a line.
func (mon *Monitor) dumpMemory(address uint16, n int) {
	for i := 0; i < n && int(address)+i < addresses.Capacity; i++ {
		a := int(address) + i
		if i%16 == 0 {
			if i > 0 {
				fmt.Fprintln(mon.output)
			}
			fmt.Fprintf(mon.output, "%#02x:", a)
		}
		v, _ := mon.ls8.Mem.Peek(uint16(a))
		fmt.Fprintf(mon.output, " %02x", v)
	}
	fmt.Fprintln(mon.output)
}

// memviz writes a graphviz diagram of the CPU structure to the named file or
// to the monitor output if no file is named.
func (mon *Monitor) memviz(args []string) error {
	if len(args) == 0 {
		memviz.Map(mon.output, mon.ls8.CPU)
		return nil
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf(CommandError, err)
	}
	defer f.Close()

	memviz.Map(f, mon.ls8.CPU)
	fmt.Fprintf(mon.output, "cpu diagram written to %s\n", args[0])

	return nil
}
