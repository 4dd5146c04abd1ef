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

package chain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/frame"
	"github.com/jetsetilly/padreplay/logger"
	"github.com/jetsetilly/padreplay/timeline"
)

// Sentinal errors.
const (
	NothingIncluded     = "chain: no segments included"
	IncompatibleSegment = "chain: incompatible segment (%d): %v"
	SegmentOutOfRange   = "chain: segment does not exist"
	UnknownButtons      = "chain: buttons not in active set: %s"
)

// Compatible is the test applied to every selected segment. A non-nil error
// causes the segment to be skipped and the error is used as the reason.
type Compatible func(segment *timeline.Timeline) error

// Chain is a flattened concatenation of timelines.
type Chain struct {
	Timeline *timeline.Timeline

	// the tick at which each included segment begins. StepMap[0] is always
	// zero and the values are strictly increasing
	StepMap []int

	// index of the source segment for each entry in the step map
	Sources []int
}

// Clone returns a deep copy of the chain. Returns nil if chn is nil.
func (chn *Chain) Clone() *Chain {
	if chn == nil {
		return nil
	}
	c := &Chain{
		StepMap: make([]int, len(chn.StepMap)),
		Sources: make([]int, len(chn.Sources)),
	}
	if chn.Timeline != nil {
		c.Timeline = chn.Timeline.Clone()
	}
	copy(c.StepMap, chn.StepMap)
	copy(c.Sources, chn.Sources)
	return c
}

// Skip records a selected segment that was not included in the chain.
type Skip struct {
	// position in the selection list
	Position int

	// index of the segment that was selected
	Segment int

	Err error
}

// Report summarises the result of Flatten().
type Report struct {
	Included int
	Skipped  []Skip
}

// SkippedSegments returns the segment index of every skipped selection.
func (r Report) SkippedSegments() []int {
	s := make([]int, len(r.Skipped))
	for i := range r.Skipped {
		s[i] = r.Skipped[i].Segment
	}
	return s
}

func (r Report) String() string {
	return fmt.Sprintf("%d included, %d skipped", r.Included, len(r.Skipped))
}

// Flatten builds a chain from the selected segments, in selection order. A
// segment may be selected more than once.
//
// Segments that fail the compatible test, or that are out of range, are
// skipped and listed in the report. Skipping is not an error. If every
// selected segment is skipped then the NothingIncluded error is returned
// along with the report. A nil compatible function accepts every segment.
func Flatten(segments []*timeline.Timeline, selection []int, compatible Compatible) (*Chain, Report, error) {
	var rep Report
	chn := &Chain{}
	var frames []frame.Frame

	tick := 0
	for pos, seg := range selection {
		if seg < 0 || seg >= len(segments) || segments[seg] == nil {
			rep.Skipped = append(rep.Skipped, Skip{
				Position: pos,
				Segment:  seg,
				Err:      curated.Errorf(IncompatibleSegment, seg, curated.Errorf(SegmentOutOfRange)),
			})
			continue
		}

		if compatible != nil {
			if err := compatible(segments[seg]); err != nil {
				rep.Skipped = append(rep.Skipped, Skip{
					Position: pos,
					Segment:  seg,
					Err:      curated.Errorf(IncompatibleSegment, seg, err),
				})
				continue
			}
		}

		if tick > math.MaxInt-segments[seg].TotalTicks() {
			rep.Skipped = append(rep.Skipped, Skip{
				Position: pos,
				Segment:  seg,
				Err:      curated.Errorf(IncompatibleSegment, seg, curated.Errorf(timeline.TotalOverflow)),
			})
			continue
		}

		chn.StepMap = append(chn.StepMap, tick)
		chn.Sources = append(chn.Sources, seg)
		frames = append(frames, segments[seg].Frames()...)
		tick += segments[seg].TotalTicks()
	}

	rep.Included = len(chn.StepMap)

	for _, s := range rep.Skipped {
		logger.Logf(logger.Allow, "chain", "skipped selection %d: %v", s.Position, s.Err)
	}

	if rep.Included == 0 {
		return nil, rep, curated.Errorf(NothingIncluded)
	}

	var err error
	chn.Timeline, err = timeline.New(frames)
	if err != nil {
		return nil, rep, err
	}

	return chn, rep, nil
}

// ResolveActiveSegment returns the greatest index i such that stepMap[i] <=
// tick. Returns -1 if the step map is empty or if tick precedes the first
// entry.
func ResolveActiveSegment(tick int, stepMap []int) int {
	return sort.Search(len(stepMap), func(i int) bool {
		return stepMap[i] > tick
	}) - 1
}

// ActiveSegment is a convenience function for ResolveActiveSegment() using the
// chain's step map.
func (chn *Chain) ActiveSegment(tick int) int {
	return ResolveActiveSegment(tick, chn.StepMap)
}

// ButtonsWithin returns a Compatible function that accepts a segment only if
// every button name referenced by its frames is in the active list.
func ButtonsWithin(active []string) Compatible {
	set := make(map[string]bool, len(active))
	for _, n := range active {
		set[n] = true
	}
	return func(segment *timeline.Timeline) error {
		var missing []string
		for _, n := range segment.ButtonNames() {
			if !set[n] {
				missing = append(missing, n)
			}
		}
		if len(missing) > 0 {
			return curated.Errorf(UnknownButtons, strings.Join(missing, ", "))
		}
		return nil
	}
}
