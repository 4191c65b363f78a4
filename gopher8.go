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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/display"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode and debugger packages
	// provide a mode specific handler.
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
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
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

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")
	md.AddAlias("PLAY", "RUN")

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

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// machineFlags are the flags common to every mode that creates a machine.
type machineFlags struct {
	mode  *string
	ipf   *int
	prefs *string
	log   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		mode:  md.AddString("mode", "", "compatibility mode: LEGACY, EXTENDED, XO (default from preferences)"),
		ipf:   md.AddInt("ipf", 0, "instructions per frame (default from preferences)"),
		prefs: md.AddString("prefs", "", "preferences for this session (eg. \"hardware.fps::50; display.scale::4\")"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// commandLinePrefs combines the -prefs flag with the preferences implied by
// the -mode and -ipf flags.
func (mf machineFlags) commandLinePrefs() string {
	s := []string{*mf.prefs}
	if *mf.mode != "" {
		s = append(s, fmt.Sprintf("hardware.mode::%s", *mf.mode))
	}
	if *mf.ipf > 0 {
		s = append(s, fmt.Sprintf("hardware.instructionsPerFrame::%d", *mf.ipf))
	}
	return strings.Join(s, "; ")
}

// session contains everything created by newSession().
type session struct {
	m     *hardware.Machine
	keys  *peripherals.Keypad
	synth *audio.Synth
	disp  *display.Preferences
}

// newSession loads the preferences, creates the machine and loads the ROM.
// the command line preferences are applied to both the hardware and display
// preferences.
func newSession(mf machineFlags, romFile string) (*session, error) {
	if *mf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(mf.commandLinePrefs())
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}()

	hw, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	sess := &session{
		keys:  &peripherals.Keypad{},
		synth: audio.NewSynth(),
	}

	sess.disp, err = display.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, hw)
	if err != nil {
		return nil, err
	}

	sess.m, err = hardware.NewMachine(env, hw.CompatMode(), sess.synth, sess.keys)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(romFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, err = sess.m.LoadROM(f)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mf := addMachineFlags(md)
	scaling := md.AddFloat64("scale", 0.0, "window scaling (default from preferences)")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	romFile := md.GetArg(0)

	sess, err := newSession(mf, romFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.m.End(); err != nil {
			fmt.Printf("* %v\n", err)
		}
	}()

	// add wavwriter mixer if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.NewWavWriter(*wav)
		if err != nil {
			return err
		}
		sess.m.AttachAudioMixer(aw)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(sess.disp)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
		if r, ok := g.(hardware.PixelRenderer); ok {
			sess.m.AttachPixelRenderer(r)
		}
		if a, ok := g.(hardware.AudioMixer); ok {
			sess.m.AttachAudioMixer(a)
		}
	case err := <-sync.creationError:
		return err
	}

	err = scr.SetFeature(gui.ReqSetTitle, filepath.Base(romFile))
	if err != nil {
		return err
	}

	if *scaling > 0.0 {
		err = scr.SetFeature(gui.ReqSetScale, *scaling)
		if err != nil {
			return err
		}
	}

	// turn off fallback ctrl-c handling. the playmode package ends the
	// emulation gracefully through the context
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = playmode.Play(ctx, sess.m, scr, sess.keys, nil)
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return scr.SetFeature(gui.ReqSavePrefs)
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mf := addMachineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddString("profile", "none", "run debugger through profiler (cpu, mem, trace, all)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	sess, err := newSession(mf, md.GetArg(0))
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	// turn off fallback ctrl-c handling. this is so that the debugger can
	// use ctrl-c events to interrupt execution of the emulation without
	// quitting the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(sess.m, sess.keys, term)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debug", func() error {
		return dbg.Start(context.Background())
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	dsm, err := disassembly.FromReader(f)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	frames := md.AddInt("frames", 0, "run for a number of frames instead of a duration")
	uncapped := md.AddBool("uncapped", true, "run as fast as possible")
	profile := md.AddString("profile", "none", "produce profiling reports (cpu, mem, trace, all)")
	digests := md.AddBool("digest", false, "print digests of the video and audio output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	sess, err := newSession(mf, md.GetArg(0))
	if err != nil {
		return err
	}

	var vid *digest.Video
	var aud *digest.Audio
	if *digests {
		vid = digest.NewVideo()
		aud = digest.NewAudio()
		sess.m.AttachPixelRenderer(vid)
		sess.m.AttachAudioMixer(aud)
	}

	fps := sess.m.Preferences().FPS.Get().(float64)
	err = performance.Check(md.Output, prf, sess.m, fps, *uncapped, *duration, *frames)
	if err != nil {
		return err
	}

	if *digests {
		fmt.Fprintf(md.Output, "video digest: %s (frame %d)\n", vid.Hash(), vid.FrameNum)
		fmt.Fprintf(md.Output, "audio digest: %s\n", aud.Hash())
	}

	return nil
}
