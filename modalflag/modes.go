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


package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
	"time"
)

const pathSeparator = "/"

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() returns the selected sub-mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output field
	ParseHelp

	// the error return value of Parse() is not nil
	ParseError
)

type subMode struct {
	name    string
	summary string
}

// Modes is the command line parser. The Output field should be set before
// Parse() is called, otherwise help messages are discarded.
type Modes struct {
	Output io.Writer

	args []string
	idx  int

	// flags and sub-modes for the current layer. recreated by NewMode()
	flags    *flag.FlagSet
	subModes []subMode
	help     string

	// every mode selected so far. never reset
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to parse and begins the first layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new layer of flags and sub-modes. Arguments consumed by
// previous calls to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AddSubMode adds a sub-mode keyword to the current layer. The first sub-mode
// added is the default.
func (md *Modes) AddSubMode(name string, summary string) {
	md.subModes = append(md.subModes, subMode{
		name:    strings.ToUpper(name),
		summary: summary,
	})
}

// AdditionalHelp is printed after the flag and sub-mode information when
// help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// Parse the current layer.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	remaining := md.args[md.idx:]

	err := md.flags.Parse(remaining)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.write(md.Output, md.Path(), md.subModes, md.help)
			return ParseHelp, nil
		}

		// the flag may belong to the default sub-mode, in which case the
		// arguments are left for the next layer
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0].name)
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// move the index past the flags of this layer
	md.idx += len(remaining) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0].name
	kw := strings.ToUpper(md.flags.Arg(0))
	for _, s := range md.subModes {
		if s.name == kw {
			mode = kw
			md.idx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags of the current
// layer. If a sub-mode keyword was found it is not included.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// Visit calls fn for every flag of the current layer that was set on the
// command line.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
