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


package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/timeline"
)

// Sentinal errors.
const (
	MalformedStep   = "demo: malformed step (%s)"
	UnknownSequence = "demo: unknown sequence (%s)"
)

// Compose builds a timeline from the step notation described in the package
// documentation.
func Compose(notation string) (*timeline.Timeline, error) {
	var frames []frame.Frame

	for _, tok := range strings.Fields(notation) {
		f, err := step(tok)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}

	return timeline.New(frames)
}

func step(tok string) (frame.Frame, error) {
	dur, rest, ok := strings.Cut(tok, "x")
	if !ok {
		return frame.Frame{}, curated.Errorf(MalformedStep, tok)
	}

	d, err := strconv.Atoi(dur)
	if err != nil {
		return frame.Frame{}, curated.Errorf(MalformedStep, tok)
	}

	parts := strings.Split(rest, "+")

	dir, err := frame.ParseDirection(parts[0])
	if err != nil {
		return frame.Frame{}, curated.Errorf(MalformedStep, tok)
	}

	buttons := make(map[string]bool)
	for _, b := range parts[1:] {
		if b == "" {
			return frame.Frame{}, curated.Errorf(MalformedStep, tok)
		}
		buttons[b] = true
	}

	return frame.New(d, dir, buttons)
}

// MustCompose is like Compose but panics on error. It is intended for
// notation that is fixed at compile time.
func MustCompose(notation string) *timeline.Timeline {
	tl, err := Compose(notation)
	if err != nil {
		panic(err)
	}
	return tl
}

// Library is a named collection of sequences. The index of a name in Names
// is the index of its sequence in Segments, so that the Segments slice can
// be passed directly to chain.Flatten().
type Library struct {
	Names    []string
	Segments []*timeline.Timeline
}

// Add a sequence to the library.
func (lib *Library) Add(name string, tl *timeline.Timeline) {
	lib.Names = append(lib.Names, name)
	lib.Segments = append(lib.Segments, tl)
}

// Lookup returns the index of the named sequence.
func (lib *Library) Lookup(name string) (int, error) {
	for i, n := range lib.Names {
		if n == name {
			return i, nil
		}
	}
	return -1, curated.Errorf(UnknownSequence, name)
}

// Selection converts a list of names into a list of segment indexes, as
// required by chain.Flatten(). Names may be repeated.
func (lib *Library) Selection(names []string) ([]int, error) {
	sel := make([]int, 0, len(names))
	for _, n := range names {
		i, err := lib.Lookup(n)
		if err != nil {
			return nil, err
		}
		sel = append(sel, i)
	}
	return sel, nil
}

// Sequence returns a copy of the named sequence.
func (lib *Library) Sequence(name string) (*timeline.Timeline, error) {
	i, err := lib.Lookup(name)
	if err != nil {
		return nil, err
	}
	return lib.Segments[i].Clone(), nil
}

func (lib *Library) String() string {
	s := strings.Builder{}
	for i, n := range lib.Names {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%-10s %3d ticks", n, lib.Segments[i].TotalTicks()))
	}
	return s.String()
}

// Builtin returns the library of built-in sequences. The sequences are
// written for a player facing right and use the default device mapping
// names. The taunt sequence uses a button that the default mapping does not
// include and so is skipped when chained against the default mapping.
func Builtin() *Library {
	lib := &Library{}
	lib.Add("idle", MustCompose("30x5"))
	lib.Add("walk", MustCompose("20x6 4x5 20x4"))
	lib.Add("dash", MustCompose("3x6 3x5 3x6 10x5"))
	lib.Add("jump", MustCompose("12x8 4x8+button2 12x5"))
	lib.Add("hadouken", MustCompose("3x2 3x3 4x6+button1 20x5"))
	lib.Add("shoryuken", MustCompose("3x6 3x2 4x3+button1 25x5"))
	lib.Add("tatsumaki", MustCompose("3x2 3x1 4x4+button2 30x5"))
	lib.Add("charge", MustCompose("45x4 3x6+button3 15x5"))
	lib.Add("super", MustCompose("3x2 3x3 3x6 3x2 3x3 4x6+button1+button3 40x5"))
	lib.Add("taunt", MustCompose("10x5+button13 10x5"))
	lib.Add("spin", spin())
	return lib
}

// spin is a full turn of the left stick with the stick released at the end.
func spin() *timeline.Timeline {
	const steps = 16

	frames := make([]frame.Frame, 0, steps+1)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		f, _ := frame.New(2, frame.Neutral, nil)
		f.LX = int16(math.Round(math.Cos(a) * math.MaxInt16))
		f.LY = int16(math.Round(math.Sin(a) * math.MaxInt16))
		frames = append(frames, f)
	}
	f, _ := frame.New(8, frame.Neutral, nil)
	frames = append(frames, f)

	tl, err := timeline.New(frames)
	if err != nil {
		panic(err)
	}
	return tl
}
