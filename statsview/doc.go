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


// Package statsview runs a local HTTP server offering runtime statistics of
// the running program. It is started by the -statsview command line flag.
//
// Graphical statistics are available at:
//
//	localhost:12600/debug/statsview
//
// and standard pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview
