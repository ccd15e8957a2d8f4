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
	"fmt"
	"math"
	"math/cmplx"
)

// coatTolerance is the relative size below which the contribution of the
// core to the remaining series terms is dropped.
const coatTolerance = 1.e-8

// Coated calculates the efficiencies of a sphere with a concentric coating.
// x is the size parameter of the core and y the size parameter of the whole
// particle; mCore and mShell are the relative refractive indices of the
// core and the coating.
func Coated(x, y float64, mCore, mShell complex128) (Result, error) {
	if err := checkSize("y", y); err != nil {
		return Result{}, err
	}
	if err := checkSize("x", x); err != nil {
		return Result{}, err
	}
	if x > y {
		return Result{}, fmt.Errorf("mie: core size parameter %g > particle size parameter %g: %w",
			x, y, ErrSizeParameter)
	}
	x1 := mCore * complex(x, 0)
	x2 := mShell * complex(x, 0)
	y2 := mShell * complex(y, 0)
	refrel := mShell / mCore

	nstop := nStop(y)
	dx1 := logDerivative(x1, nstop)
	dx2 := logDerivative(x2, nstop)
	dy2 := logDerivative(y2, nstop)

	psi0y, psi1y := math.Cos(y), math.Sin(y)
	chi0y, chi1y := -math.Sin(y), math.Cos(y)
	xi1y := complex(psi1y, -chi1y)
	chi0y2, chi1y2 := -cmplx.Sin(y2), cmplx.Cos(y2)
	chi0x2, chi1x2 := -cmplx.Sin(x2), cmplx.Cos(x2)

	var (
		s              series
		brack, crack   complex128
		chiy2, chipy2  complex128
		coreNegligible bool
	)
	for n := 1; n <= nstop; n++ {
		fn := float64(n)
		cn := complex(fn, 0)
		psiy := (2*fn-1)*psi1y/y - psi0y
		chiy := (2*fn-1)*chi1y/y - chi0y
		xiy := complex(psiy, -chiy)
		d1y2 := dy2[n]

		if !coreNegligible {
			d1x1, d1x2 := dx1[n], dx2[n]
			chix2 := (2*cn-1)*chi1x2/x2 - chi0x2
			chiy2 = (2*cn-1)*chi1y2/y2 - chi0y2
			chipx2 := chi1x2 - cn*chix2/x2
			chipy2 = chi1y2 - cn*chiy2/y2

			ancap := (refrel*d1x1 - d1x2) / (refrel*d1x1*chix2 - chipx2) / (chix2*d1x2 - chipx2)
			brack = ancap * (chiy2*d1y2 - chipy2)
			bncap := (refrel*d1x2 - d1x1) / (refrel*chipx2 - d1x1*chix2) / (chix2*d1x2 - chipx2)
			crack = bncap * (chiy2*d1y2 - chipy2)

			if cmplx.Abs(brack*chipy2) <= coatTolerance*cmplx.Abs(d1y2) &&
				cmplx.Abs(brack*chiy2) <= coatTolerance &&
				cmplx.Abs(crack*chipy2) <= coatTolerance*cmplx.Abs(d1y2) &&
				cmplx.Abs(crack*chiy2) <= coatTolerance {
				brack, crack = 0, 0
				coreNegligible = true
			}
			chi0x2, chi1x2 = chi1x2, chix2
			chi0y2, chi1y2 = chi1y2, chiy2
		}

		dnbar := (d1y2 - brack*chipy2) / (1 - brack*chiy2)
		gnbar := (d1y2 - crack*chipy2) / (1 - crack*chiy2)
		da := dnbar/mShell + complex(fn/y, 0)
		an := (da*complex(psiy, 0) - complex(psi1y, 0)) / (da*xiy - xi1y)
		db := mShell*gnbar + complex(fn/y, 0)
		bn := (db*complex(psiy, 0) - complex(psi1y, 0)) / (db*xiy - xi1y)
		s.add(n, an, bn)

		psi0y, psi1y = psi1y, psiy
		chi0y, chi1y = chi1y, chiy
		xi1y = complex(psi1y, -chi1y)
	}
	return s.result(y)
}
