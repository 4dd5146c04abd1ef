// This file is part of padreplay.
//
// padreplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padreplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padreplay.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/padreplay/control"
	"github.com/jetsetilly/padreplay/demo"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/engine"
	"github.com/jetsetilly/padreplay/logger"
	"github.com/jetsetilly/padreplay/modalflag"
	"github.com/jetsetilly/padreplay/paths"
	"github.com/jetsetilly/padreplay/prefs"
	"github.com/jetsetilly/padreplay/remote"
	"github.com/jetsetilly/padreplay/sdlpad"
	"github.com/jetsetilly/padreplay/statsview"
	"github.com/jetsetilly/padreplay/termpad"
	"github.com/jetsetilly/padreplay/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when a mode handles the
	// interrupt signal itself so that it can shut down cleanly.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// MainService is anything that must be serviced from the main thread. SDL
// is the only example at present.
type MainService interface {
	// cleanup resources used by the service
	Destroy(io.Writer)

	// Service should not block for longer than is necessary. It must only be
	// called from the main thread.
	Service()
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (MainService, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan MainService
	creationError chan error
}

// create a MainService on the main thread.
func (sync *mainSync) create(creator func() (MainService, error)) (MainService, error) {
	sync.creator <- creator
	select {
	case svc := <-sync.creation:
		return svc, nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// closed channel that is always ready to receive. used to select the
// service case when nothing else is pending.
var serviceReady = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

func newMainSync() *mainSync {
	return &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (MainService, error)),
		creation:      make(chan MainService),
		creationError: make(chan error),
	}
}

// #mainthread
func main() {
	sync := newMainSync()

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := sync.serve(intChan)

	fmt.Print("\r")
	os.Exit(exitVal)
}

// serve requests on the main thread until a quit request or an interrupt
// signal. returns the value to use with os.Exit(), which can be changed with
// the reqQuit stateRequest.
//
// #mainthread
func (sync *mainSync) serve(intChan <-chan os.Signal) int {
	exitVal := 0
	done := false
	var svc MainService

	for !done {
		// the service is called whenever there is nothing else to do. with
		// no service we can block until something happens
		var idle <-chan struct{}
		if svc != nil {
			idle = serviceReady
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if svc != nil {
				svc.Destroy(os.Stderr)
				svc = nil
			}

			s, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				svc = s
				sync.creation <- svc
			}

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

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-idle:
			svc.Service()
		}
	}

	if svc != nil {
		svc.Destroy(os.Stderr)
	}

	return exitVal
}

// launch is called from main() as a goroutine. uses mainSync instance to
// request main thread services and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubMode("DEMO", "play built-in sequences")
	md.AddSubMode("MANUAL", "manual control from the keyboard or a gamepad")
	md.AddSubMode("REMOTE", "websocket control surface")
	md.AddSubMode("VERSION", "print version information")

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
	case "DEMO":
		err = demoMode(md, sync)

	case "MANUAL":
		err = manualMode(md, sync)

	case "REMOTE":
		err = remoteMode(md, sync)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode.
type common struct {
	log          *bool
	statsview    *bool
	prefs        *string
	checkWriters *bool
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, "launch runtime statistics server"),
		prefs:     md.AddString("prefs", "", "preference overrides, eg. \"playback.loop::true; playback.tickrate::30\""),

		checkWriters: md.AddBool("checkwriters", false, "refuse controller writes from goroutines that do not own the device"),
	}
}

// surface applies the common flags and creates the control surface. the
// device is connected.
func (cmn *common) surface(driver device.Driver) (*control.Surface, error) {
	if *cmn.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *cmn.statsview {
		statsview.Launch(os.Stdout, "")
	}

	if *cmn.prefs != "" {
		prefs.PushCommandLineStack(*cmn.prefs)
	}

	pth, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return nil, err
	}

	srf, err := control.NewSurface(driver, engine.LimiterPacers, pth)
	if *cmn.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "padreplay", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return nil, err
	}
	srf.CheckWriters(*cmn.checkWriters)

	if err := srf.ConnectDevice(); err != nil {
		srf.Close()
		return nil, err
	}

	return srf, nil
}

// interruptible returns a context that is cancelled by the interrupt signal.
// the main thread's handler is turned off.
func interruptible(sync *mainSync) (context.Context, context.CancelFunc) {
	sync.state <- stateRequest{req: reqNoIntSig}
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func demoMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	cmn := addCommon(md)
	list := md.AddBool("list", false, "list the built-in sequences")
	loop := md.AddBool("loop", false, "loop playback")
	invert := md.AddBool("invert", false, "mirror playback for a player facing left")
	rate := md.AddInt("rate", 0, "ticks per second (0 to use the preference value)")
	compose := md.AddString("compose", "", "play a sequence in step notation, eg. \"3x2 3x3 4x6+button1\"")
	memvizFile := md.AddString("memviz", "", "write the structure of the loaded chain to a dot file")
	md.AdditionalHelp("Arguments are the names of built-in sequences to chain together.\nUse -list to see the available sequences.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lib := demo.Builtin()
	if *list {
		fmt.Println(lib)
		return nil
	}

	srf, err := cmn.surface(device.NewEchoDriver(os.Stdout))
	if err != nil {
		return err
	}
	defer srf.Close()

	if *compose != "" {
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("sequence names cannot be used with -compose")
		}
		tl, err := demo.Compose(*compose)
		if err != nil {
			return err
		}
		if err := srf.Load(tl); err != nil {
			return err
		}
	} else {
		names := md.RemainingArgs()
		if len(names) == 0 {
			names = []string{"hadouken"}
		}

		sel, err := lib.Selection(names)
		if err != nil {
			return err
		}

		rep, err := srf.LoadChain(lib.Segments, sel, nil)
		if err != nil {
			return err
		}
		for _, s := range rep.Skipped {
			fmt.Printf("skipping %s: %v\n", names[s.Position], s.Err)
		}

		if *memvizFile != "" {
			if err := writeMemviz(*memvizFile, srf); err != nil {
				return err
			}
		}
	}

	if err := srf.SetLoop(*loop); err != nil {
		return err
	}
	if err := srf.SetInvert(*invert); err != nil {
		return err
	}
	if *rate > 0 {
		if err := srf.SetTickRate(*rate); err != nil {
			return err
		}
	}

	ctx, cancel := interruptible(sync)
	defer cancel()

	if err := srf.Start(); err != nil {
		return err
	}

	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return srf.DisconnectDevice()
		case <-t.C:
			p := srf.Progress()
			switch p.State {
			case engine.Finished:
				return srf.DisconnectDevice()
			case engine.Idle:
				// playback can only become idle unexpectedly
				if err := srf.LastError(); err != nil {
					return err
				}
				return nil
			}
		}
	}
}

func writeMemviz(filename string, srf *control.Surface) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, srf.Chain())
	fmt.Printf("chain structure written to %s\n", filename)

	return nil
}

func manualMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubMode("TERM", "keyboard input from the terminal")
	md.AddSubMode("SDL", "gamepad input using SDL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.NewMode()
	cmn := addCommon(md)
	quiet := md.AddBool("quiet", false, "do not echo controller output")

	switch md.Mode() {
	case "TERM":
		tty := md.AddString("tty", termpad.DefaultTerminal, "terminal device")
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		srf, err := cmn.surface(echoDriver(*quiet))
		if err != nil {
			return err
		}
		defer srf.Close()

		pad, err := termpad.Open(*tty, srf)
		if err != nil {
			return err
		}
		defer pad.Close()

		ctx, cancel := interruptible(sync)
		defer cancel()

		if err := pad.Run(ctx); err != nil {
			return err
		}
		return srf.DisconnectDevice()

	case "SDL":
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		srf, err := cmn.surface(echoDriver(*quiet))
		if err != nil {
			return err
		}
		defer srf.Close()

		quit := make(chan struct{})
		_, err = sync.create(func() (MainService, error) {
			pad, err := sdlpad.NewPad(srf)
			if err != nil {
				return nil, err
			}
			return &sdlService{pad: pad, quit: quit}, nil
		})
		if err != nil {
			return err
		}

		ctx, cancel := interruptible(sync)
		defer cancel()

		select {
		case <-ctx.Done():
		case <-quit:
		}
		return srf.DisconnectDevice()
	}

	return nil
}

// sdlService adapts sdlpad.Pad to the MainService interface.
type sdlService struct {
	pad  *sdlpad.Pad
	quit chan struct{}
	done bool
}

// timeout in milliseconds for each call to sdlpad.Pad.Service()
const sdlServiceTimeout = 10

func (svc *sdlService) Service() {
	if svc.done {
		time.Sleep(sdlServiceTimeout * time.Millisecond)
		return
	}
	if !svc.pad.Service(sdlServiceTimeout) {
		svc.done = true
		close(svc.quit)
	}
}

func (svc *sdlService) Destroy(_ io.Writer) {
	svc.pad.Destroy()
}

func echoDriver(quiet bool) device.Driver {
	if quiet {
		return device.NewEchoDriver(io.Discard)
	}
	return device.NewEchoDriver(os.Stdout)
}

func remoteMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	cmn := addCommon(md)
	addr := md.AddString("addr", "localhost:12601", "listen address")
	interval := md.AddDuration("interval", remote.DefaultInterval, "progress broadcast interval")
	quiet := md.AddBool("quiet", false, "do not echo controller output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	srf, err := cmn.surface(echoDriver(*quiet))
	if err != nil {
		return err
	}
	defer srf.Close()

	srv := remote.NewServer(srf, demo.Builtin())

	mux := http.NewServeMux()
	mux.Handle("/ws", srv)

	hs := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := interruptible(sync)
	defer cancel()

	go srv.Run(ctx, *interval)

	errs := make(chan error, 1)
	go func() {
		errs <- hs.ListenAndServe()
	}()

	fmt.Printf("remote control available at ws://%s/ws\n", strings.TrimPrefix(*addr, "http://"))

	select {
	case <-ctx.Done():
		sctx, scancel := context.WithTimeout(context.Background(), time.Second)
		defer scancel()
		if err := hs.Shutdown(sctx); err != nil {
			return err
		}
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return srf.DisconnectDevice()
}
