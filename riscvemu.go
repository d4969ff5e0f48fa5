// This file is part of riscvemu.
//
// riscvemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscvemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscvemu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/ItsIronicIInsist/riscvEmu/digest"
	"github.com/ItsIronicIInsist/riscvEmu/disassembly"
	"github.com/ItsIronicIInsist/riscvEmu/hardware"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/govern"
	"github.com/ItsIronicIInsist/riscvEmu/hardware/preferences"
	"github.com/ItsIronicIInsist/riscvEmu/logger"
	"github.com/ItsIronicIInsist/riscvEmu/modalflag"
	"github.com/ItsIronicIInsist/riscvEmu/performance"
	"github.com/ItsIronicIInsist/riscvEmu/prefs"
	"github.com/ItsIronicIInsist/riscvEmu/statsview"
	"github.com/ItsIronicIInsist/riscvEmu/version"
)

// exit value for any error in the launch process or in the emulation
const errorExit = 10

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code to return.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main goroutine and the launch goroutine.
type mainSync struct {
	state chan stateRequest

	// set by the main goroutine on receipt of an interrupt signal
	interrupted atomic.Bool
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			// the first interrupt asks the emulation to stop. a second
			// interrupt ends the program immediately
			if sync.interrupted.Load() {
				fmt.Println("\r")
				exitVal = errorExit
				done = true
			}
			sync.interrupted.Store(true)

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "STEP", "PERFORMANCE", "VERSION")
	md.AdditionalHelp("environment calls: a7=64 writes a2 bytes from address a1 to stdout. a7=93 exits with a0")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	exitVal := 0

	switch md.Mode() {
	case "RUN":
		exitVal, err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = stepper(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	sync.state <- stateRequest{req: reqQuit, args: exitVal}
}

// the image file is the only argument for the RUN, DISASM and STEP modes
func imageArg(md *modalflag.Modes) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("binary image required for %s mode", md)
	case 1:
		return os.ReadFile(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// load the hardware preferences with the command line preferences pushed
// on to the stack. preferences are not connected to a file if the file
// cannot be used
func hardwarePreferences(cmdline string) *preferences.Preferences {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "prefs", "%v", err)
		p = preferences.NewDefaults()
	}

	return p
}

// create a machine for the image named on the command line
func newMachine(md *modalflag.Modes, cmdline string) (*hardware.Machine, error) {
	image, err := imageArg(md)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(hardwarePreferences(cmdline), image)
	if err != nil {
		return nil, err
	}
	m.Output = os.Stdout

	return m, nil
}

func run(md *modalflag.Modes, sync *mainSync) (int, error) {
	md.NewMode()

	maxSteps := md.AddInt("maxsteps", 0, "halt after the number of instructions (0 uses the preference value)")
	trace := md.AddBool("trace", false, "log every executed instruction")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memviz := md.AddString("memviz", "", "write graphviz description of CPU state to file on halt")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	dig := md.AddBool("digest", false, "print digest of machine state on halt")
	cmdline := md.AddString("prefs", "", "preferences as key::value pairs separated by semicolons")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return 0, err
	}

	if *log || *trace {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	m, err := newMachine(md, *cmdline)
	if err != nil {
		return 0, err
	}

	if *trace {
		if err := m.Prefs.Trace.Set(true); err != nil {
			return 0, err
		}
	}
	if *maxSteps > 0 {
		if err := m.Prefs.MaxSteps.Set(*maxSteps); err != nil {
			return 0, err
		}
	}

	if *stats {
		stop := statsview.Launch(os.Stdout, statsview.DefaultAddress)
		defer stop()
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return 0, err
	}

	err = performance.RunProfiler(prf, "riscvemu", func() error {
		return m.Run(func() (govern.State, error) {
			if sync.interrupted.Load() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	})

	if *memviz != "" {
		if err := dumpState(m, *memviz); err != nil {
			return 0, err
		}
	}

	if err != nil {
		return 0, err
	}

	logger.Logf(logger.Allow, "riscvemu", "%s after %d steps", m.Halt, m.Steps)

	if *dig {
		d := digest.NewMachine(m)
		if err := d.Update(); err != nil {
			return 0, err
		}
		fmt.Println(d.Hash())
	}

	return m.ExitCode, nil
}

func dumpState(m *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	m.DumpState(f)
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 's' for seconds)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	cmdline := md.AddString("prefs", "", "preferences as key::value pairs separated by semicolons")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(md, *cmdline)
	if err != nil {
		return err
	}

	// output from the machine would interfere with the report
	m.Output = nil

	return performance.Check(os.Stdout, prf, m, *duration)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	offsets := md.AddBool("offsets", false, "include address and instruction word")
	grep := md.AddString("grep", "", "only show instructions matching the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := imageArg(md)
	if err != nil {
		return err
	}

	dsm := disassembly.FromImage(image)
	attr := disassembly.WriteAttr{Address: *offsets, ByteCode: *offsets}

	if *grep != "" {
		return dsm.Grep(os.Stdout, attr, disassembly.GrepAll, *grep, false)
	}
	return dsm.Write(os.Stdout, attr)
}
