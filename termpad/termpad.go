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


package termpad

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/logger"
)

// Sentinal errors.
const (
	TerminalError = "termpad: %v"
)

// DefaultTerminal is the terminal device used by Open() when no device is
// specified.
const DefaultTerminal = "/dev/tty"

// poll period for the terminal. context cancellation is noticed no later
// than this
const readTimeout = 100 * time.Millisecond

// Pad reads keypresses from a terminal.
type Pad struct {
	t   *term.Term
	snd Sender
	l   *latch
}

// Open the terminal device and put it into raw mode.
func Open(device string, snd Sender) (*Pad, error) {
	if device == "" {
		device = DefaultTerminal
	}

	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Pad{
		t:   t,
		snd: snd,
		l:   newLatch(),
	}, nil
}

// Close restores the terminal to its original mode.
func (pad *Pad) Close() error {
	if err := pad.t.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return pad.t.Close()
}

// Run reads keys until the quit key is pressed or the context is cancelled.
// Errors from the Sender are logged and do not end the loop.
func (pad *Pad) Run(ctx context.Context) error {
	buf := make([]byte, 16)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := pad.t.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			return curated.Errorf(TerminalError, err)
		}

		for _, b := range buf[:n] {
			a := pad.l.key(b)
			if a == actionQuit {
				_ = pad.snd.ClearManualInput()
				return nil
			}
			if err := pad.l.perform(a, pad.snd); err != nil {
				logger.Logf(logger.Allow, "termpad", "%v", err)
			}
		}
	}
}
