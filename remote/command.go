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


package remote

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/demo"
	"github.com/jetsetilly/padreplay/frame"
)

// Sentinal errors.
const (
	UnknownCommand = "remote: unknown command (%s)"
	BadArguments   = "remote: bad arguments for %s: %s"
)

// command is a function that performs a parsed command. the returned value
// will be sent to the client as the Data field of the Reply.
type command func(srv *Server, args []string) (any, error)

var commands = map[string]command{
	"list":       cmdList,
	"load":       cmdLoad,
	"compose":    cmdCompose,
	"chain":      cmdChain,
	"start":      noArgs(func(srv *Server) error { return srv.srf.Start() }),
	"stop":       noArgs(func(srv *Server) error { return srv.srf.Stop() }),
	"pause":      noArgs(func(srv *Server) error { return srv.srf.Pause() }),
	"resume":     noArgs(func(srv *Server) error { return srv.srf.Resume() }),
	"clear":      noArgs(func(srv *Server) error { return srv.srf.ClearManualInput() }),
	"connect":    noArgs(func(srv *Server) error { return srv.srf.ConnectDevice() }),
	"disconnect": noArgs(func(srv *Server) error { return srv.srf.DisconnectDevice() }),
	"seek":       cmdSeek,
	"loop":       onOff(func(srv *Server, v bool) error { return srv.srf.SetLoop(v) }),
	"invert":     onOff(func(srv *Server, v bool) error { return srv.srf.SetInvert(v) }),
	"rate":       cmdRate,
	"manual":     cmdManual,
	"test":       cmdTest,
	"progress":   cmdProgress,
}

// perform the command described by the text message.
func (srv *Server) perform(msg string) Reply {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return failed("", curated.Errorf(UnknownCommand, ""))
	}

	kw := strings.ToLower(fields[0])
	cmd, ok := commands[kw]
	if !ok {
		return failed(kw, curated.Errorf(UnknownCommand, kw))
	}

	data, err := cmd(srv, fields[1:])
	if err != nil {
		return failed(kw, err)
	}

	return Reply{
		Kind:    KindReply,
		Command: kw,
		OK:      true,
		Data:    data,
	}
}

func failed(kw string, err error) Reply {
	return Reply{
		Kind:    KindReply,
		Command: kw,
		Code:    classify(err),
		Error:   err.Error(),
	}
}

func noArgs(f func(srv *Server) error) command {
	return func(srv *Server, args []string) (any, error) {
		if len(args) > 0 {
			return nil, curated.Errorf(BadArguments, "command", "unexpected arguments")
		}
		return nil, f(srv)
	}
}

func onOff(f func(srv *Server, v bool) error) command {
	return func(srv *Server, args []string) (any, error) {
		if len(args) != 1 {
			return nil, curated.Errorf(BadArguments, "toggle", "expected on or off")
		}
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			return nil, f(srv, true)
		case "off", "false", "0":
			return nil, f(srv, false)
		}
		return nil, curated.Errorf(BadArguments, "toggle", args[0])
	}
}

func cmdList(srv *Server, args []string) (any, error) {
	if len(args) > 0 {
		return nil, curated.Errorf(BadArguments, "list", "unexpected arguments")
	}
	names := make([]string, len(srv.lib.Names))
	copy(names, srv.lib.Names)
	return names, nil
}

func cmdLoad(srv *Server, args []string) (any, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(BadArguments, "load", "expected one sequence name")
	}
	tl, err := srv.lib.Sequence(args[0])
	if err != nil {
		return nil, err
	}
	return nil, srv.srf.Load(tl)
}

func cmdCompose(srv *Server, args []string) (any, error) {
	if len(args) == 0 {
		return nil, curated.Errorf(BadArguments, "compose", "expected at least one step")
	}
	tl, err := demo.Compose(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	return nil, srv.srf.Load(tl)
}

func cmdChain(srv *Server, args []string) (any, error) {
	if len(args) == 0 {
		return nil, curated.Errorf(BadArguments, "chain", "expected at least one sequence name")
	}
	sel, err := srv.lib.Selection(args)
	if err != nil {
		return nil, err
	}
	rep, err := srv.srf.LoadChain(srv.lib.Segments, sel, nil)
	if err != nil {
		return nil, err
	}
	return newChainReport(rep, srv.lib), nil
}

func cmdSeek(srv *Server, args []string) (any, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(BadArguments, "seek", "expected tick")
	}
	tick, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, curated.Errorf(BadArguments, "seek", args[0])
	}
	return nil, srv.srf.Seek(tick)
}

func cmdRate(srv *Server, args []string) (any, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(BadArguments, "rate", "expected ticks per second")
	}
	hz, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, curated.Errorf(BadArguments, "rate", args[0])
	}
	return nil, srv.srf.SetTickRate(hz)
}

// forwarded is the Data of the reply to manual and test commands.
type forwarded struct {
	Forwarded bool `json:"forwarded"`
}

func cmdManual(srv *Server, args []string) (any, error) {
	if len(args) == 0 {
		return nil, curated.Errorf(BadArguments, "manual", "expected direction")
	}
	dir, err := frame.ParseDirection(args[0])
	if err != nil {
		return nil, curated.Errorf(BadArguments, "manual", args[0])
	}
	buttons := make(map[string]bool, len(args)-1)
	for _, b := range args[1:] {
		buttons[b] = true
	}
	ok, err := srv.srf.SendManualInput(dir, buttons)
	if err != nil {
		return nil, err
	}
	return forwarded{Forwarded: ok}, nil
}

func cmdTest(srv *Server, args []string) (any, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(BadArguments, "test", "expected one button name")
	}
	ok, err := srv.srf.SendTestButton(args[0])
	if err != nil {
		return nil, err
	}
	return forwarded{Forwarded: ok}, nil
}

func cmdProgress(srv *Server, args []string) (any, error) {
	if len(args) > 0 {
		return nil, curated.Errorf(BadArguments, "progress", "unexpected arguments")
	}
	return newProgress(srv.srf.Progress()), nil
}
