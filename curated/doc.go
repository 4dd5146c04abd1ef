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

// Package curated is a helper package for errors that are expected during
// normal operation of the player. Curated errors implement the error
// interface and are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is the identity of the error. Packages that return curated
// errors declare the patterns they use as constants so that callers can test
// for them with Is() and Has(). For example, the engine package declares:
//
//	const NoSequenceLoaded = "engine: no sequence loaded"
//
// and the control surface can distinguish the case with:
//
//	if curated.Is(err, engine.NoSequenceLoaded) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of curated values.
// This is useful when an error has been wrapped by another curated error:
//
//	e := curated.Errorf(device.UpdateFailed, cause)
//	f := curated.Errorf(engine.DeviceError, e)
//
//	curated.Is(f, device.UpdateFailed)  // false
//	curated.Has(f, device.UpdateFailed) // true
//
// The Error() function normalises the message chain so that adjacent parts
// that are identical are printed only once. Parts are separated by the
// sub-string ": ". This means that a function can wrap an error with its own
// prefix without worrying whether the error already carries that prefix:
//
//	engine: engine: no sequence loaded
//
// is printed as
//
//	engine: no sequence loaded
//
// IsAny() answers whether an error is curated at all. Errors that are not
// curated are unexpected and should be treated more severely by the caller.
//
// Curated errors implement Unwrap(), returning the first value that is itself
// an error. This makes them usable with the errors.Is() and errors.As()
// functions of the standard library when the wrapped error is a sentinel from
// another package (eg. os.ErrNotExist).
package curated
