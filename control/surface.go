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

package control

import (
	"sync"

	"github.com/jetsetilly/padreplay/arbiter"
	"github.com/jetsetilly/padreplay/chain"
	"github.com/jetsetilly/padreplay/device"
	"github.com/jetsetilly/padreplay/engine"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/logger"
	"github.com/jetsetilly/padreplay/timeline"
)

// Surface is the control surface for the playback engine and the manual
// input arbiter.
type Surface struct {
	dev *device.Device
	arb *arbiter.Arbiter
	eng *engine.Engine

	Prefs *Preferences

	// the most recently loaded chain. nil if a plain timeline was loaded
	crit sync.Mutex
	chn  *chain.Chain

	closeOnce sync.Once
	done      chan struct{}
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The device is not connected. Preferences are loaded from the file at
// prefsPath. A nil pacer factory will default to real-time pacing.
func NewSurface(driver device.Driver, pacers engine.PacerFactory, prefsPath string) (*Surface, error) {
	srf := &Surface{
		dev:  device.NewDevice(driver, nil),
		done: make(chan struct{}),
	}

	var err error
	srf.arb, err = arbiter.NewArbiter(srf.dev, arbiter.DefaultCadence)
	if err != nil {
		return nil, err
	}
	srf.eng = engine.NewEngine(srf.dev, srf.arb, pacers)

	go srf.logNotices()

	srf.Prefs, err = newPreferences(srf, prefsPath)
	if err != nil {
		srf.Close()
		return nil, err
	}

	return srf, nil
}

func (srf *Surface) logNotices() {
	for {
		select {
		case <-srf.done:
			return
		case n := <-srf.eng.Notices():
			logger.Log(logger.Allow, "engine", n.String())
		}
	}
}

// Close ends playback, disconnects the device and releases all resources.
func (srf *Surface) Close() {
	srf.closeOnce.Do(func() {
		srf.eng.Close()
		srf.arb.Close()
		close(srf.done)
		if err := srf.dev.Disconnect(); err != nil {
			logger.Log(logger.Allow, "control", err.Error())
		}
	})
}

// CheckWriters enables or disables the test that refuses controller writes
// from any goroutine other than the current owner of the device.
func (srf *Surface) CheckWriters(on bool) {
	srf.dev.CheckOwnership(on)
}

// Load a timeline for playback.
func (srf *Surface) Load(tl *timeline.Timeline) error {
	if err := srf.eng.Load(tl); err != nil {
		return err
	}
	srf.crit.Lock()
	defer srf.crit.Unlock()
	srf.chn = nil
	return nil
}

// LoadChain flattens the selected segments and loads the result for
// playback. If compatible is nil then segments using buttons that are not in
// the device mapping are skipped.
func (srf *Surface) LoadChain(segments []*timeline.Timeline, selection []int, compatible chain.Compatible) (chain.Report, error) {
	if compatible == nil {
		compatible = chain.ButtonsWithin(srf.dev.Mapping().Names())
	}

	chn, rep, err := chain.Flatten(segments, selection, compatible)
	if err != nil {
		return rep, err
	}
	logger.Logf(logger.Allow, "control", "chain loaded: %s", rep)

	if err := srf.eng.LoadChain(chn); err != nil {
		return rep, err
	}

	srf.crit.Lock()
	defer srf.crit.Unlock()
	srf.chn = chn

	return rep, nil
}

// Chain returns a copy of the most recently loaded chain. Returns nil if the
// most recent load was a plain timeline.
func (srf *Surface) Chain() *chain.Chain {
	srf.crit.Lock()
	defer srf.crit.Unlock()
	return srf.chn.Clone()
}

// Timeline returns a copy of the loaded timeline.
func (srf *Surface) Timeline() *timeline.Timeline {
	return srf.eng.Timeline()
}

// Edit the loaded timeline. See engine.Edit() for details.
func (srf *Surface) Edit(f func(tl *timeline.Timeline) error) error {
	return srf.eng.Edit(f)
}

// Start playback.
func (srf *Surface) Start() error {
	return srf.eng.Start()
}

// Stop playback.
func (srf *Surface) Stop() error {
	return srf.eng.Stop()
}

// Pause playback.
func (srf *Surface) Pause() error {
	return srf.eng.Pause()
}

// Resume playback.
func (srf *Surface) Resume() error {
	return srf.eng.Resume()
}

// Seek to the tick.
func (srf *Surface) Seek(tick int) error {
	return srf.eng.Seek(tick)
}

// SetLoop sets whether playback loops.
func (srf *Surface) SetLoop(loop bool) error {
	return srf.Prefs.Loop.Set(loop)
}

// SetInvert sets whether playback is mirrored horizontally.
func (srf *Surface) SetInvert(invert bool) error {
	return srf.Prefs.Invert.Set(invert)
}

// SetTickRate sets the playback rate in ticks per second.
func (srf *Surface) SetTickRate(hz int) error {
	return srf.Prefs.TickRate.Set(hz)
}

// Progress returns the current playback progress.
func (srf *Surface) Progress() engine.Progress {
	return srf.eng.Progress()
}

// ActiveFrameIndex returns the index of the frame at the current playback
// position.
func (srf *Surface) ActiveFrameIndex() int {
	return srf.eng.ActiveFrameIndex()
}

// ActiveSegment returns the index in the chain's step map of the segment at
// the current playback position. Returns -1 if no chain is loaded.
func (srf *Surface) ActiveSegment() int {
	return srf.eng.Progress().Segment
}

// LastError returns the error that caused playback to end unexpectedly.
func (srf *Surface) LastError() error {
	return srf.eng.LastError()
}

// SendManualInput sets the manual input. Returns false if the input was
// dropped because playback is running.
func (srf *Surface) SendManualInput(direction frame.Direction, buttons map[string]bool) (bool, error) {
	return srf.arb.Send(direction, buttons)
}

// SendTestButton presses the named button on its own. Returns false if the
// input was dropped because playback is running.
func (srf *Surface) SendTestButton(button string) (bool, error) {
	return srf.arb.SendTest(button)
}

// ClearManualInput releases all manual input.
func (srf *Surface) ClearManualInput() error {
	return srf.arb.Clear()
}

// ConnectDevice plugs in the virtual controller.
func (srf *Surface) ConnectDevice() error {
	if err := srf.dev.Connect(); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "control", "%s controller connected", srf.dev.Controller())
	return nil
}

// DisconnectDevice stops any playback and unplugs the virtual controller.
func (srf *Surface) DisconnectDevice() error {
	if err := srf.eng.Stop(); err != nil {
		return err
	}
	if err := srf.arb.Clear(); err != nil {
		return err
	}
	if err := srf.dev.Disconnect(); err != nil {
		return err
	}
	logger.Log(logger.Allow, "control", "controller disconnected")
	return nil
}

// DeviceConnected returns true if the virtual controller is plugged in.
func (srf *Surface) DeviceConnected() bool {
	return srf.dev.Connected()
}
