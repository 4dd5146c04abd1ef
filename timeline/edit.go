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

package timeline

import (
	"github.com/jetsetilly/padreplay/curated"
	"github.com/jetsetilly/padreplay/frame"
)

func (tl *Timeline) checkIndex(idx int) error {
	if idx < 0 || idx >= len(tl.frames) {
		return curated.Errorf(IndexOutOfRange, idx)
	}
	return nil
}

// Insert frame before the frame at index. An index equal to Len() appends the
// frame.
func (tl *Timeline) Insert(idx int, f frame.Frame) error {
	if idx < 0 || idx > len(tl.frames) {
		return curated.Errorf(IndexOutOfRange, idx)
	}
	if err := f.Validate(); err != nil {
		return curated.Errorf(InvalidFrame, idx, err)
	}
	if err := tl.fits(0, f.Duration); err != nil {
		return err
	}
	tl.frames = append(tl.frames, frame.Frame{})
	copy(tl.frames[idx+1:], tl.frames[idx:])
	tl.frames[idx] = f.Normalise()
	tl.rebuild()
	return nil
}

// Append frame to the end of the timeline.
func (tl *Timeline) Append(f frame.Frame) error {
	return tl.Insert(len(tl.frames), f)
}

// Remove the frame at index. The last remaining frame cannot be removed.
func (tl *Timeline) Remove(idx int) error {
	if err := tl.checkIndex(idx); err != nil {
		return err
	}
	if len(tl.frames) == 1 {
		return curated.Errorf(LastFrame)
	}
	tl.frames = append(tl.frames[:idx], tl.frames[idx+1:]...)
	tl.rebuild()
	return nil
}

// Replace the frame at index.
func (tl *Timeline) Replace(idx int, f frame.Frame) error {
	if err := tl.checkIndex(idx); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return curated.Errorf(InvalidFrame, idx, err)
	}
	if err := tl.fits(tl.frames[idx].Duration, f.Duration); err != nil {
		return err
	}
	tl.frames[idx] = f.Normalise()
	tl.rebuild()
	return nil
}

// Move the frame at index from so that it ends up at index to.
func (tl *Timeline) Move(from int, to int) error {
	if err := tl.checkIndex(from); err != nil {
		return err
	}
	if err := tl.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	f := tl.frames[from]
	if from < to {
		copy(tl.frames[from:to], tl.frames[from+1:to+1])
	} else {
		copy(tl.frames[to+1:from+1], tl.frames[to:from])
	}
	tl.frames[to] = f
	tl.rebuild()
	return nil
}

// SetDuration changes the duration of the frame at index.
func (tl *Timeline) SetDuration(idx int, duration int) error {
	if err := tl.checkIndex(idx); err != nil {
		return err
	}
	f := tl.frames[idx]
	f.Duration = duration
	if err := f.Validate(); err != nil {
		return curated.Errorf(InvalidFrame, idx, err)
	}
	if err := tl.fits(tl.frames[idx].Duration, duration); err != nil {
		return err
	}
	tl.frames[idx] = f
	tl.rebuild()
	return nil
}
