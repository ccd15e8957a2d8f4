/*
Copyright © 2026 the coreshell authors.
This file is part of coreshell.

coreshell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

coreshell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with coreshell.  If not, see <http://www.gnu.org/licenses/>.
*/

package coreshell

// Solver is an interface for any type that can calculate the raw Mie
// efficiency factors of a coated sphere with total radius totalRadius
// and core radius coreRadius (both in μm), made of and illuminated as
// described by m.
//
// Implementations must be safe for concurrent use when used with an
// Integrator that has more than one worker.
type Solver interface {
	Solve(totalRadius, coreRadius float64, m Medium) (RawEfficiencies, error)
}

// SolverFunc is an adapter that allows an ordinary function to be
// used as a Solver.
type SolverFunc func(totalRadius, coreRadius float64, m Medium) (RawEfficiencies, error)

// Solve calls f(totalRadius, coreRadius, m).
func (f SolverFunc) Solve(totalRadius, coreRadius float64, m Medium) (RawEfficiencies, error) {
	return f(totalRadius, coreRadius, m)
}
