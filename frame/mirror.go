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

package frame

import "strings"

// button names with a conventional left/right counterpart that do not contain
// the words left or right.
var mirrorPairs = map[string]string{
	"LB": "RB", "RB": "LB",
	"LT": "RT", "RT": "LT",
	"LS": "RS", "RS": "LS",
	"L1": "R1", "R1": "L1",
	"L2": "R2", "R2": "L2",
	"L3": "R3", "R3": "L3",
	"L": "R", "R": "L",
	"LTHUMB": "RTHUMB", "RTHUMB": "LTHUMB",
}

// the replacer performs all replacements in a single pass so "leftright"
// becomes "rightleft" and not "leftleft"
var mirrorWords = strings.NewReplacer(
	"left", "right", "right", "left",
	"Left", "Right", "Right", "Left",
	"LEFT", "RIGHT", "RIGHT", "LEFT",
)

// MirrorButtonName returns the left/right counterpart of the button name. If
// the name has no counterpart it is returned unchanged.
//
// Applying the function twice always returns the original name.
func MirrorButtonName(name string) string {
	if m, ok := mirrorPairs[name]; ok {
		return m
	}
	return mirrorWords.Replace(name)
}
