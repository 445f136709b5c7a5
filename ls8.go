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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/ls8/disassembly"
	"github.com/jetsetilly/ls8/hardware"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/hardware/output"
	"github.com/jetsetilly/ls8/keyboard"
	"github.com/jetsetilly/ls8/loader"
	"github.com/jetsetilly/ls8/logger"
	"github.com/jetsetilly/ls8/modalflag"
	"github.com/jetsetilly/ls8/monitor"
	"github.com/jetsetilly/ls8/profile"
	"github.com/jetsetilly/ls8/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PROFILE")
	md.AdditionalHelp("LS-8 programs are text files of eight digit binary numbers, one per line.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md, os.Stdout)

	case "PROFILE":
		err = perform(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// programLoader returns a loader for the single remaining argument.
func programLoader(md *modalflag.Modes) (loader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return loader.Loader{}, fmt.Errorf("LS-8 program required for %s mode", md)
	case 1:
		return loader.NewLoader(md.GetArg(0)), nil
	}
	return loader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func setLog(echo bool) {
	if echo {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	clock := md.AddDuration("clock", 0, "interval between instructions (0 is as fast as possible)")
	timer := md.AddDuration("timer", hardware.DefaultTimerInterval, "interval between timer interrupts (0 disables the timer)")
	useKeyboard := md.AddBool("keyboard", true, "raise keyboard interrupts for keys read from stdin")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log)

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	ls8 := hardware.NewLS8(output.NewWriter(os.Stdout))
	ls8.TimerInterval = *timer

	err = ls8.AttachProgram(ld)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *stats {
		if statsview.Available() {
			defer statsview.Launch(os.Stdout)()
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	if *useKeyboard {
		defer attachKeyboard(ctx, os.Stdin, ls8.Interrupts)()
	}

	return ls8.RunClocked(ctx, *clock)
}

// attachKeyboard raises keyboard interrupts for keys read from in. If in is
// the terminal then it is put into cbreak mode until the returned function is
// called.
func attachKeyboard(ctx context.Context, in io.Reader, ints *interrupts.Controller) func() {
	if in == io.Reader(os.Stdin) && keyboard.Available() {
		kb, err := keyboard.Attach(ints)
		if err == nil {
			kbCtx, kbCancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() {
				done <- kb.Run(kbCtx)
			}()

			// the keyboard goroutine must end before the terminal is restored
			return func() {
				kbCancel()
				if err := <-done; err != nil {
					fmt.Printf("* %v\n", err)
				}
				kb.Close()
			}
		}
		logger.Log(logger.Allow, "ls8", err)
	}

	// a read from a pipe can't be interrupted so the pump is not waited for
	go func() {
		if err := keyboard.Pump(ctx, in, ints); err != nil {
			logger.Log(logger.Allow, "keyboard", err)
		}
	}()

	return func() {}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	timer := md.AddDuration("timer", 0, "interval between timer interrupts (0 disables the timer)")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log)

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	ls8 := hardware.NewLS8(output.NewWriter(os.Stdout))
	ls8.TimerInterval = *timer

	err = ls8.AttachProgram(ld)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(ls8, os.Stdout)
	mon.Interactive = keyboard.Available()

	// ctrl-c stops a running program rather than the monitor
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	done := make(chan bool)
	defer close(done)

	go func() {
		for {
			select {
			case <-intChan:
				ls8.Stop()
			case <-done:
				return
			}
		}
	}()

	return mon.Run(os.Stdin)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	err = ld.Load()
	if err != nil {
		return err
	}

	dsm := disassembly.FromProgram(ld.Data)
	dsm.Write(output, disassembly.WriteAttr{ByteCode: *bytecode, Data: true})

	return nil
}

func perform(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	csvFile := md.AddString("csv", "", "write profile as CSV to file")
	limit := md.AddInt("limit", 1000000, "maximum number of instructions to execute")
	timer := md.AddDuration("timer", 0, "interval between timer interrupts (0 disables the timer)")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log)

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	ls8 := hardware.NewLS8(output.NewWriter(out))
	ls8.TimerInterval = *timer

	err = ls8.AttachProgram(ld)
	if err != nil {
		return err
	}

	prof := profile.NewProfile()
	ls8.SetInstructionHook(prof.Record)

	// the profile is printed even if the program faults
	runErr := ls8.RunForInstructionCount(*limit, nil)

	fmt.Fprintf(out, "%d instructions (%s)\n", prof.Total(), ls8.State())
	fmt.Fprint(out, prof.Table())

	if *csvFile != "" {
		f, err := os.Create(*csvFile)
		if err != nil {
			return err
		}
		defer f.Close()

		err = prof.WriteCSV(f)
		if err != nil {
			return err
		}
	}

	return runErr
}
