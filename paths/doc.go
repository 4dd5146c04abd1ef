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

// Package paths contains functions to prepare paths for padreplay resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// ResourcePath() handles the differences between release and development
// builds. For development builds the path is rooted in the current working
// directory, in a directory named ".padreplay". For release builds, made with
// the "release" build tag, the path is rooted in the user's configuration
// directory as reported by os.UserConfigDir().
package paths
