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
	"github.com/jetsetilly/padreplay/arbiter"
	"github.com/jetsetilly/padreplay/chain"
	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/demo"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/engine"
)

// Message kinds.
const (
	KindReply    = "reply"
	KindProgress = "progress"
)

// Reply is sent in response to a command.
type Reply struct {
	Kind    string `json:"kind"`
	Command string `json:"command"`
	OK      bool   `json:"ok"`

	// short identifier for the class of error. empty if OK is true
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`

	Data any `json:"data,omitempty"`
}

// Progress is the wire form of engine.Progress.
type Progress struct {
	Kind     string  `json:"kind"`
	State    string  `json:"state"`
	Current  int     `json:"current"`
	Total    int     `json:"total"`
	Frame    int     `json:"frame"`
	Segment  int     `json:"segment"`
	Loop     bool    `json:"loop"`
	Invert   bool    `json:"invert"`
	TickRate int     `json:"tickrate"`
	Measured float32 `json:"measured"`
}

func newProgress(p engine.Progress) Progress {
	return Progress{
		Kind:     KindProgress,
		State:    p.State.String(),
		Current:  p.Current,
		Total:    p.Total,
		Frame:    p.Frame,
		Segment:  p.Segment,
		Loop:     p.Loop,
		Invert:   p.Invert,
		TickRate: p.TickRate,
		Measured: p.Measured,
	}
}

// ChainReport is the wire form of chain.Report.
type ChainReport struct {
	Included int         `json:"included"`
	Skipped  []ChainSkip `json:"skipped"`
}

// ChainSkip is the wire form of chain.Skip.
type ChainSkip struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

func newChainReport(rep chain.Report, lib *demo.Library) ChainReport {
	r := ChainReport{
		Included: rep.Included,
		Skipped:  make([]ChainSkip, 0, len(rep.Skipped)),
	}
	for _, s := range rep.Skipped {
		sk := ChainSkip{Position: s.Position}
		if s.Segment >= 0 && s.Segment < len(lib.Names) {
			sk.Name = lib.Names[s.Segment]
		}
		if s.Err != nil {
			sk.Reason = s.Err.Error()
		}
		r.Skipped = append(r.Skipped, sk)
	}
	return r
}

// list of error codes. errors are classified so that a client can tell the
// difference between an operator mistake and a hardware problem without
// parsing the error message.
var codes = []struct {
	pattern string
	code    string
}{
	{pattern: engine.NoSequenceLoaded, code: "no_sequence"},
	{pattern: engine.DeviceNotConnected, code: "device_not_connected"},
	{pattern: arbiter.DeviceNotConnected, code: "device_not_connected"},
	{pattern: device.NotConnected, code: "device_not_connected"},
	{pattern: engine.DeviceError, code: "device_error"},
	{pattern: device.UpdateFailed, code: "device_error"},
	{pattern: device.ConnectFailed, code: "device_error"},
	{pattern: device.DisconnectFailed, code: "device_error"},
	{pattern: engine.ConfigurationLocked, code: "configuration_locked"},
	{pattern: engine.SequenceLocked, code: "sequence_locked"},
	{pattern: engine.InvalidTickRate, code: "invalid_tick_rate"},
	{pattern: engine.InvalidTransition, code: "invalid_transition"},
	{pattern: engine.LeaseUnavailable, code: "lease_unavailable"},
	{pattern: chain.NothingIncluded, code: "nothing_included"},
	{pattern: demo.UnknownSequence, code: "unknown_sequence"},
	{pattern: demo.MalformedStep, code: "malformed_step"},
	{pattern: UnknownCommand, code: "unknown_command"},
	{pattern: BadArguments, code: "bad_arguments"},
}

func classify(err error) string {
	for _, c := range codes {
		if curated.Has(err, c.pattern) {
			return c.code
		}
	}
	return "error"
}
