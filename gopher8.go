// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdl"
	"github.com/jetsetilly/gopher8/gui/textgui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/statsview"
)

const usage = "usage: gopher8 [RUN|DISASM|PERFORMANCE] [flags] <program>\n"

// Sentinal errors returned by the mode functions.
const (
	missingProgram = "gopher8: program required for %s mode"
	tooManyArgs    = "gopher8: too many arguments for %s mode"
	unknownDisplay = "gopher8: unknown display type (%s)"
)

// how often the Service() function of the GUI is called
const serviceRate = time.Millisecond

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the playmode package provides
	// a mode specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	service := time.NewTicker(serviceRate)
	defer service.Stop()

	done := false
	var creation GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if creation != nil {
				creation.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if creation != nil {
				creation.Destroy(os.Stderr)
			}

			creation, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer stored in an interface is not equal to nil
				creation = nil
			} else {
				sync.creation <- creation
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if creation != nil {
					creation.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service.C:
			if creation != nil {
				creation.Service()
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}

	// a program is always required
	if len(args) == 0 {
		md.Output.Write([]byte(usage))
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DISASM", "PERFORMANCE")
	md.AddDefaultSubMode("RUN")
	md.AdditionalHelp(usage)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = play(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// hardwarePreferences creates the hardware preferences with the values from
// the -prefs argument. Explicit flags take priority and are applied by the
// caller afterwards.
func hardwarePreferences(prefsArg string) (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(prefsArg)
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
	}
	return p, err
}

// loadProgram creates and loads a program loader for the single remaining
// argument of the mode.
func loadProgram(md *modalflag.Modes) (programloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return programloader.Loader{}, curated.Errorf(missingProgram, md)
	case 1:
		loader := programloader.NewLoader(md.GetArg(0))
		if !programloader.HasRecognisedExtension(loader.Filename) {
			logger.Logf(logger.Allow, "gopher8", "unrecognised file extension: %s", loader.ShortName())
		}
		err := loader.Load()
		return loader, err
	}
	return programloader.Loader{}, curated.Errorf(tooManyArgs, md)
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	guiType := md.AddString("gui", "SDL", "display type: SDL, TERM, NONE")
	scale := md.AddInt("scale", sdl.DefaultScale, "pixel scaling (SDL only)")
	clock := md.AddInt("clock", preferences.DefaultClockHz, "instructions per second")
	strict := md.AddBool("strict", false, "unknown instructions are an error")
	frames := md.AddInt("frames", 0, "run for a number of frames without a display and print the framebuffer")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences string: \"key::value; key::value\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	hwPrefs, err := hardwarePreferences(*prefsArg)
	if err != nil {
		return err
	}

	var flagErr error
	md.Visit(func(flag string) {
		switch flag {
		case "clock":
			if err := hwPrefs.ClockHz.Set(*clock); err != nil {
				flagErr = err
			}
		case "strict":
			_ = hwPrefs.StrictDecode.Set(*strict)
		}
	})
	if flagErr != nil {
		return flagErr
	}

	loader, err := loadProgram(md)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwPrefs)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "gopher8", "%s", hwPrefs)
	logger.Logf(logger.Allow, "gopher8", "random seed: %d", m.Random.Seed())

	if *frames != 0 {
		return playmode.RunForFrames(m, loader, *frames, md.Output)
	}

	var scr gui.GUI

	switch *guiType {
	case "SDL", "sdl":
		sync.creator <- func() (GuiCreator, error) {
			return sdl.NewGUI(*scale)
		}
	case "TERM", "term":
		sync.creator <- func() (GuiCreator, error) {
			return textgui.NewTextGUI(os.Stdin, os.Stdout)
		}
	case "NONE", "none":
	default:
		return curated.Errorf(unknownDisplay, *guiType)
	}

	// wait for creator result
	if *guiType != "NONE" && *guiType != "none" {
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}
	}

	// turn off fallback ctrl-c handling. the playmode has a handler of its own
	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(m, loader, scr)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	decoded := md.AddBool("decoded", false, "show unreachable words as instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	loader, err := loadProgram(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(loader)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Decoded:  *decoded,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences string: \"key::value; key::value\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	hwPrefs, err := hardwarePreferences(*prefsArg)
	if err != nil {
		return err
	}

	loader, err := loadProgram(md)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hwPrefs)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prf, m, loader, *duration)
}
