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

package device

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
)

// Target is the part of the virtual controller that a button name drives.
type Target int

// List of valid Target values.
const (
	TargetNone Target = iota
	TargetA
	TargetB
	TargetX
	TargetY
	TargetLB
	TargetRB
	TargetLT
	TargetRT
	TargetBack
	TargetStart
	TargetLThumb
	TargetRThumb
	TargetGuide
)

var targetNames = map[Target]string{
	TargetA:      "A",
	TargetB:      "B",
	TargetX:      "X",
	TargetY:      "Y",
	TargetLB:     "LB",
	TargetRB:     "RB",
	TargetLT:     "LT",
	TargetRT:     "RT",
	TargetBack:   "BACK",
	TargetStart:  "START",
	TargetLThumb: "LTHUMB",
	TargetRThumb: "RTHUMB",
	TargetGuide:  "GUIDE",
}

var targetButtons = map[Target]Buttons{
	TargetA:      A,
	TargetB:      B,
	TargetX:      X,
	TargetY:      Y,
	TargetLB:     LB,
	TargetRB:     RB,
	TargetBack:   Back,
	TargetStart:  Start,
	TargetLThumb: LThumb,
	TargetRThumb: RThumb,
	TargetGuide:  Guide,
}

func (t Target) String() string {
	if s, ok := targetNames[t]; ok {
		return s
	}
	return "none"
}

// ParseTarget returns the Target with the name. The comparison is case
// insensitive.
func ParseTarget(s string) (Target, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, n := range targetNames {
		if n == s {
			return t, nil
		}
	}
	return TargetNone, curated.Errorf(UnknownTarget, s)
}

// Mapping translates button names to controller targets. Button names that
// are not in the mapping are ignored.
type Mapping map[string]Target

// DefaultMapping returns the standard mapping of the numbered buttons
// button1 to button12. The target names themselves (eg. "A", "LB") are also
// mapped.
func DefaultMapping() Mapping {
	m := Mapping{
		"button1":  TargetA,
		"button2":  TargetB,
		"button3":  TargetX,
		"button4":  TargetY,
		"button5":  TargetLB,
		"button6":  TargetRB,
		"button7":  TargetLT,
		"button8":  TargetRT,
		"button9":  TargetBack,
		"button10": TargetStart,
		"button11": TargetLThumb,
		"button12": TargetRThumb,
	}
	for t, n := range targetNames {
		m[n] = t
	}
	return m
}

// Names returns the sorted list of button names in the mapping.
func (m Mapping) Names() []string {
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// String returns the mapping in the form "name=target,name=target". The
// result can be parsed by Parse().
func (m Mapping) String() string {
	s := make([]string, 0, len(m))
	for _, k := range m.Names() {
		s = append(s, fmt.Sprintf("%s=%s", k, m[k]))
	}
	return strings.Join(s, ",")
}

// Parse replaces the contents of the mapping with the result of parsing the
// string. The mapping is unchanged if there is an error.
func (m Mapping) Parse(s string) error {
	n := make(Mapping)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return curated.Errorf(MalformedMapping, p)
		}
		t, err := ParseTarget(v)
		if err != nil {
			return err
		}
		n[strings.TrimSpace(k)] = t
	}

	for k := range m {
		delete(m, k)
	}
	for k, v := range n {
		m[k] = v
	}
	return nil
}

// Report creates the Report for the snapshot. A trigger that is driven by a
// pressed button is fully pressed regardless of its analog value.
func (m Mapping) Report(s Snapshot) Report {
	r := Report{
		LT: s.LT,
		RT: s.RT,
		LX: s.LX,
		LY: s.LY,
		RX: s.RX,
		RY: s.RY,
	}

	up, down, left, right := s.Direction.Components()
	if up {
		r.Buttons |= DPadUp
	}
	if down {
		r.Buttons |= DPadDown
	}
	if left {
		r.Buttons |= DPadLeft
	}
	if right {
		r.Buttons |= DPadRight
	}

	for name, pressed := range s.Buttons {
		if !pressed {
			continue
		}
		switch t := m[name]; t {
		case TargetNone:
		case TargetLT:
			r.LT = 255
		case TargetRT:
			r.RT = 255
		default:
			r.Buttons |= targetButtons[t]
		}
	}

	return r
}
