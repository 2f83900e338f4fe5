// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package gui defines the interface that the visual presentation of the
// emulated machine must implement. The implementations are in the sub-packages
// of this package.
//
// Some GUI frameworks, notably SDL, require that window creation and event
// handling happen on the main thread. Implementations that have this
// requirement will do this work in a Service() function which is called
// from the main thread. Present() may be called from any goroutine.
//
// User input is sent on the channel returned by UserInput(). The events are
// those defined in the userinput package.
package gui
