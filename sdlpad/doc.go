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


// Package sdlpad uses a physical gamepad, opened through SDL, as a source of
// manual input. The gamepad's dpad and left stick drive the direction and
// its buttons and triggers are forwarded by name.
//
// SDL must be serviced from the main thread. The Pad type should be created
// and serviced by the main goroutine of the program, with runtime.LockOSThread()
// in effect.
package sdlpad
