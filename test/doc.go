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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess()/ExpectFailure() functions report a
// test failure but allow the test to continue. The Demand*() equivalents stop
// the test immediately. Use the Demand*() functions when continuing the test
// would be meaningless, for example when a constructor has failed.
//
// The Writer and RingWriter types are io.Writer implementations that are
// useful for capturing output from packages that write to an io.Writer (the
// logger package for instance).
package test
