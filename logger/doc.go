// This file is part of vgm2electron.
//
// vgm2electron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgm2electron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgm2electron.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for vgm2electron. Log entries
// are made up of a tag and a detail. The tag identifies the part of the
// program raising the entry, for example "demux" or "ula". The detail can be
// any value. Strings, errors and types implementing fmt.Stringer are all
// handled sensibly.
//
// Repeated entries (same tag and detail) are folded into a single entry with
// a repeat count. This is useful for the conversion process, which can raise
// the same warning for many consecutive frames:
//
//	ula: frequency too low (62.50Hz) (repeat x120)
//
// Logging is gated by the Permission interface. A Permission that returns
// false from AllowLogging() causes the entry to be discarded. The Allow value
// always permits logging and is used for data-integrity warnings that should
// never be hidden. The conversion configuration implements Permission and
// only allows logging in verbose mode, which is how per-frame trace
// information is controlled.
//
// There is a central logger which is accessed through the package level
// functions. The NewLogger() function creates a logger independent of the
// central logger, which is useful for testing.
package logger
