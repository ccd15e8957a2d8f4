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

package mie

import (
	"math"
	"math/cmplx"
)

// Homogeneous calculates the efficiencies of a homogeneous sphere with
// size parameter x and relative refractive index m.
func Homogeneous(x float64, m complex128) (Result, error) {
	if err := checkSize("x", x); err != nil {
		return Result{}, err
	}
	nstop := nStop(x)
	d := logDerivative(m*complex(x, 0), nstop)

	psi0, psi1 := math.Cos(x), math.Sin(x)
	chi0, chi1 := -math.Sin(x), math.Cos(x)
	xi1 := complex(psi1, -chi1)
	var s series
	for n := 1; n <= nstop; n++ {
		fn := float64(n)
		psi := (2*fn-1)*psi1/x - psi0
		chi := (2*fn-1)*chi1/x - chi0
		xi := complex(psi, -chi)

		da := d[n]/m + complex(fn/x, 0)
		an := (da*complex(psi, 0) - complex(psi1, 0)) / (da*xi - xi1)
		db := m*d[n] + complex(fn/x, 0)
		bn := (db*complex(psi, 0) - complex(psi1, 0)) / (db*xi - xi1)
		s.add(n, an, bn)

		psi0, psi1 = psi1, psi
		chi0, chi1 = chi1, chi
		xi1 = complex(psi1, -chi1)
	}
	return s.result(x)
}

// logDerivative returns the logarithmic derivative D_n(z) of the
// Riccati-Bessel function psi_n(z) for n = 0 through at least nstop,
// calculated by downward recurrence.
func logDerivative(z complex128, nstop int) []complex128 {
	nmx := int(math.Max(float64(nstop), cmplx.Abs(z))) + 16
	d := make([]complex128, nmx+1)
	for n := nmx; n > 0; n-- {
		nz := complex(float64(n), 0) / z
		d[n-1] = nz - 1/(d[n]+nz)
	}
	return d
}
