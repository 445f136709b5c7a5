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
	"fmt"
	"io"
	"sort"
	"strings"
)

// List of commands understood by the monitor.
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdRegs    = "REGS"
	cmdStack   = "STACK"
	cmdMem     = "MEM"
	cmdPoke    = "POKE"
	cmdDisasm  = "DISASM"
	cmdBreak   = "BREAK"
	cmdClear   = "CLEAR"
	cmdInt     = "INT"
	cmdKey     = "KEY"
	cmdReset   = "RESET"
	cmdProfile = "PROFILE"
	cmdLog     = "LOG"
	cmdMemviz  = "MEMVIZ"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

var help = map[string]string{
	cmdStep:    "STEP [n]          execute n instructions (default 1)",
	cmdRun:     "RUN               run until HLT, fault or breakpoint",
	cmdRegs:    "REGS              show the CPU registers",
	cmdStack:   "STACK             show the values on the stack",
	cmdMem:     "MEM [addr [n]]    show n bytes of memory (default 16)",
	cmdPoke:    "POKE addr value   write value to memory",
	cmdDisasm:  "DISASM [addr [n]] disassemble n instructions (default 8)",
	cmdBreak:   "BREAK [addr]      add breakpoint or list breakpoints",
	cmdClear:   "CLEAR [addr]      remove breakpoint or all breakpoints",
	cmdInt:     "INT line          raise interrupt line (0 to 7)",
	cmdKey:     "KEY char          press a key",
	cmdReset:   "RESET             reset the machine and reload the program",
	cmdProfile: "PROFILE           show the execution profile",
	cmdLog:     "LOG [n]           show the last n log entries (default 10)",
	cmdMemviz:  "MEMVIZ [file]     write a graphviz diagram of the CPU",
	cmdHelp:    "HELP              this list",
	cmdQuit:    "QUIT              leave the monitor",
}

// abbreviations of commands
var aliases = map[string]string{
	"S": cmdStep,
	"R": cmdRun,
	"M": cmdMem,
	"D": cmdDisasm,
	"B": cmdBreak,
	"Q": cmdQuit,
	"?": cmdHelp,
}

func lookupCommand(s string) (string, bool) {
	s = strings.ToUpper(s)
	if a, ok := aliases[s]; ok {
		return a, true
	}
	_, ok := help[s]
	return s, ok
}

func writeHelp(output io.Writer) {
	cmds := make([]string, 0, len(help))
	for c := range help {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)

	for _, c := range cmds {
		fmt.Fprintln(output, help[c])
	}
}
