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

// Package test bundles helper functions for use with the standard Go test
// harness.
//
// The Expect functions report a failure and let the test continue. The
// Demand functions stop the test immediately. All of them accept optional
// tags which are printed with the failure message, useful when the test is
// iterating over a table of cases.
//
//	for i, c := range cases {
//		test.ExpectEquality(t, got, c.want, i)
//	}
//
// The CompareWriter type is an io.Writer that collects output for later
// comparison.
package test
