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


package remote_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/padreplay/control"
	"github.com/jetsetilly/padreplay/demo"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/device/capture"
	"github.com/jetsetilly/padreplay/engine"
	"github.com/jetsetilly/padreplay/limiter"
	"github.com/jetsetilly/padreplay/remote"
	"github.com/jetsetilly/padreplay/test"
)

const timeout = time.Second

// reply is the client side view of remote.Reply. the data field is decoded
// later according to the command.
type reply struct {
	Kind    string          `json:"kind"`
	Command string          `json:"command"`
	OK      bool            `json:"ok"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	drv    *capture.Driver
	pacers *limiter.ManualFactory
	srf    *control.Surface
	srv    *remote.Server
	conn   *websocket.Conn
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fx := &fixture{
		drv:    capture.NewDriver(),
		pacers: &limiter.ManualFactory{},
	}

	var err error
	fx.srf, err = control.NewSurface(fx.drv, func(hz int) (engine.Pacer, error) {
		return fx.pacers.New(hz)
	}, filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	t.Cleanup(fx.srf.Close)

	fx.srv = remote.NewServer(fx.srf, demo.Builtin())

	ts := httptest.NewServer(fx.srv)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	fx.conn, _, err = websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { fx.conn.Close() })

	return fx
}

// next returns the next message of the specified kind. messages of other
// kinds are discarded.
func (fx *fixture) next(t *testing.T, kind string) []byte {
	t.Helper()
	for {
		test.DemandSuccess(t, fx.conn.SetReadDeadline(time.Now().Add(timeout)))
		_, msg, err := fx.conn.ReadMessage()
		test.DemandSuccess(t, err)

		var k struct {
			Kind string `json:"kind"`
		}
		test.DemandSuccess(t, json.Unmarshal(msg, &k))
		if k.Kind == kind {
			return msg
		}
	}
}

func (fx *fixture) command(t *testing.T, cmd string) reply {
	t.Helper()
	test.DemandSuccess(t, fx.conn.WriteMessage(websocket.TextMessage, []byte(cmd)))

	var r reply
	test.DemandSuccess(t, json.Unmarshal(fx.next(t, remote.KindReply), &r))
	return r
}

func (fx *fixture) progress(t *testing.T) remote.Progress {
	t.Helper()
	r := fx.command(t, "progress")
	test.DemandSuccess(t, r.OK)

	var p remote.Progress
	test.DemandSuccess(t, json.Unmarshal(r.Data, &p))
	return p
}

// waitProgress issues progress commands until the condition is satisfied.
func (fx *fixture) waitProgress(t *testing.T, cond func(remote.Progress) bool) remote.Progress {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		p := fx.progress(t)
		if cond(p) {
			return p
		}
		if time.Now().After(deadline) {
			t.Fatalf("progress condition not met: %+v", p)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestList(t *testing.T) {
	fx := newFixture(t)

	r := fx.command(t, "list")
	test.DemandSuccess(t, r.OK)
	test.ExpectEquality(t, r.Command, "list")

	var names []string
	test.DemandSuccess(t, json.Unmarshal(r.Data, &names))
	test.ExpectEquality(t, len(names), len(demo.Builtin().Names))
	test.ExpectEquality(t, names[0], "idle")
}

func TestErrorCodes(t *testing.T) {
	fx := newFixture(t)

	r := fx.command(t, "start")
	test.ExpectFailure(t, r.OK)
	test.ExpectEquality(t, r.Code, "no_sequence")

	r = fx.command(t, "load hadouken")
	test.DemandSuccess(t, r.OK)

	r = fx.command(t, "start")
	test.ExpectFailure(t, r.OK)
	test.ExpectEquality(t, r.Code, "device_not_connected")

	r = fx.command(t, "load fireball")
	test.ExpectEquality(t, r.Code, "unknown_sequence")

	r = fx.command(t, "compose 3x6+")
	test.ExpectEquality(t, r.Code, "malformed_step")

	r = fx.command(t, "jump")
	test.ExpectEquality(t, r.Code, "unknown_command")

	r = fx.command(t, "seek forward")
	test.ExpectEquality(t, r.Code, "bad_arguments")

	r = fx.command(t, "rate 1000")
	test.ExpectEquality(t, r.Code, "invalid_tick_rate")

	r = fx.command(t, "connect")
	test.DemandSuccess(t, r.OK)
	r = fx.command(t, "start")
	test.DemandSuccess(t, r.OK)

	r = fx.command(t, "rate 30")
	test.ExpectEquality(t, r.Code, "configuration_locked")

	r = fx.command(t, "resume")
	test.ExpectEquality(t, r.Code, "invalid_transition")
}

func TestPlayback(t *testing.T) {
	fx := newFixture(t)

	test.DemandSuccess(t, fx.command(t, "compose 2x8+button1 2x5").OK)
	test.DemandSuccess(t, fx.command(t, "connect").OK)
	test.DemandSuccess(t, fx.command(t, "start").OK)

	p := fx.progress(t)
	test.ExpectEquality(t, p.State, engine.Running.String())
	test.ExpectEquality(t, p.Total, 4)

	test.DemandEquality(t, fx.pacers.Pulse(4), 4)
	p = fx.waitProgress(t, func(p remote.Progress) bool {
		return p.State == engine.Finished.String()
	})
	test.ExpectEquality(t, p.Current, 4)

	reps := fx.drv.Reports()
	test.DemandSuccess(t, len(reps) >= 4)
	test.ExpectEquality(t, reps[0].Buttons, device.DPadUp|device.A)
	test.ExpectEquality(t, reps[len(reps)-1], device.Report{})
}

func TestChain(t *testing.T) {
	fx := newFixture(t)

	r := fx.command(t, "chain dash taunt hadouken")
	test.DemandSuccess(t, r.OK)

	var rep remote.ChainReport
	test.DemandSuccess(t, json.Unmarshal(r.Data, &rep))
	test.ExpectEquality(t, rep.Included, 2)
	test.DemandEquality(t, len(rep.Skipped), 1)
	test.ExpectEquality(t, rep.Skipped[0].Position, 1)
	test.ExpectEquality(t, rep.Skipped[0].Name, "taunt")

	r = fx.command(t, "chain taunt")
	test.ExpectEquality(t, r.Code, "nothing_included")
}

func TestManual(t *testing.T) {
	fx := newFixture(t)

	r := fx.command(t, "manual 2 button1")
	test.ExpectEquality(t, r.Code, "device_not_connected")

	test.DemandSuccess(t, fx.command(t, "connect").OK)

	r = fx.command(t, "manual 2 button1")
	test.DemandSuccess(t, r.OK)

	var fwd struct {
		Forwarded bool `json:"forwarded"`
	}
	test.DemandSuccess(t, json.Unmarshal(r.Data, &fwd))
	test.ExpectSuccess(t, fwd.Forwarded)
	test.ExpectSuccess(t, fx.drv.Wait(2, timeout))
	last, _ := fx.drv.Last()
	test.ExpectEquality(t, last.Buttons, device.DPadDown|device.A)

	test.DemandSuccess(t, fx.command(t, "clear").OK)
	last, _ = fx.drv.Last()
	test.ExpectEquality(t, last, device.Report{})

	// manual input is dropped while playback is running
	test.DemandSuccess(t, fx.command(t, "load idle").OK)
	test.DemandSuccess(t, fx.command(t, "start").OK)
	r = fx.command(t, "test button2")
	test.DemandSuccess(t, r.OK)
	test.DemandSuccess(t, json.Unmarshal(r.Data, &fwd))
	test.ExpectFailure(t, fwd.Forwarded)
}

func TestToggles(t *testing.T) {
	fx := newFixture(t)

	test.DemandSuccess(t, fx.command(t, "loop on").OK)
	test.DemandSuccess(t, fx.command(t, "invert on").OK)
	test.DemandSuccess(t, fx.command(t, "rate 30").OK)

	p := fx.waitProgress(t, func(p remote.Progress) bool {
		return p.Loop && p.Invert && p.TickRate == 30
	})
	test.ExpectEquality(t, p.State, engine.Idle.String())

	r := fx.command(t, "loop maybe")
	test.ExpectEquality(t, r.Code, "bad_arguments")
}

func TestBroadcast(t *testing.T) {
	fx := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fx.srv.Run(ctx, time.Millisecond)

	var p remote.Progress
	test.DemandSuccess(t, json.Unmarshal(fx.next(t, remote.KindProgress), &p))
	test.ExpectEquality(t, p.State, engine.Idle.String())

	test.DemandSuccess(t, fx.command(t, "load dash").OK)

	deadline := time.Now().Add(timeout)
	for p.Total == 0 {
		test.DemandSuccess(t, json.Unmarshal(fx.next(t, remote.KindProgress), &p))
		if time.Now().After(deadline) {
			t.Fatalf("no progress broadcast after load")
		}
	}
	test.ExpectEquality(t, p.Total, 19)
	test.ExpectEquality(t, fx.srv.ClientCount(), 1)
}
