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

// Package mie calculates the scattering of light by homogeneous and
// concentrically coated spheres using the series solutions of Bohren and
// Huffman (1983), Absorption and Scattering of Light by Small Particles.
package mie

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spatialmodel/coreshell"
)

// MaxSizeParameter is the largest size parameter the series solutions
// will attempt.
const MaxSizeParameter = 2.e4

var (
	// ErrSizeParameter is returned for size parameters that are not
	// positive, not finite, or larger than MaxSizeParameter.
	ErrSizeParameter = errors.New("mie: invalid size parameter")

	// ErrNotFinite is returned when the series do not produce finite
	// efficiencies.
	ErrNotFinite = errors.New("mie: efficiencies are not finite")
)

// Result holds the efficiency factors of a single sphere.
type Result struct {
	Qsca  float64 // Scattering efficiency
	Qext  float64 // Extinction efficiency
	Qback float64 // Backscattering efficiency
	G     float64 // Asymmetry parameter
}

// Qabs returns the absorption efficiency.
func (r Result) Qabs() float64 { return r.Qext - r.Qsca }

// CoreShell implements coreshell.Solver for a coated sphere in a
// non-absorbing medium with a refractive index of one. Radii and the
// wavelength must be in the same units.
type CoreShell struct{}

// Solve implements coreshell.Solver.
func (CoreShell) Solve(totalRadius, coreRadius float64, m coreshell.Medium) (coreshell.RawEfficiencies, error) {
	if !(m.Wavelength > 0) {
		return coreshell.RawEfficiencies{}, fmt.Errorf("mie: wavelength %g must be > 0: %w", m.Wavelength, ErrSizeParameter)
	}
	k := 2 * math.Pi / m.Wavelength
	var r Result
	var err error
	switch {
	case coreRadius <= 0:
		r, err = Homogeneous(k*totalRadius, m.NShell)
	case coreRadius >= totalRadius:
		r, err = Homogeneous(k*totalRadius, m.NCore)
	default:
		r, err = Coated(k*coreRadius, k*totalRadius, m.NCore, m.NShell)
	}
	if err != nil {
		return coreshell.RawEfficiencies{}, err
	}
	return coreshell.RawEfficiencies{Qsca: r.Qsca, Qext: r.Qext, Asym: r.G}, nil
}

func checkSize(name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) || x > MaxSizeParameter {
		return fmt.Errorf("mie: %s=%g: %w", name, x, ErrSizeParameter)
	}
	return nil
}

// series accumulates the efficiency sums from the scattering
// coefficients an and bn.
type series struct {
	sca, ext, g float64
	back        complex128
	an1, bn1    complex128
}

func (s *series) add(n int, an, bn complex128) {
	fn := float64(n)
	s.sca += (2*fn + 1) * (abs2(an) + abs2(bn))
	s.ext += (2*fn + 1) * (real(an) + real(bn))
	s.g += (2*fn + 1) / (fn * (fn + 1)) * real(an*cmplx.Conj(bn))
	if n > 1 {
		s.g += (fn - 1) * (fn + 1) / fn * real(s.an1*cmplx.Conj(an)+s.bn1*cmplx.Conj(bn))
	}
	sign := 1.
	if n%2 == 1 {
		sign = -1
	}
	s.back += complex(sign*(2*fn+1), 0) * (an - bn)
	s.an1, s.bn1 = an, bn
}

// result normalizes the sums by the size parameter x.
func (s *series) result(x float64) (Result, error) {
	var g float64
	if s.sca > 0 {
		g = 2 * s.g / s.sca
	}
	r := Result{
		Qsca:  2 * s.sca / (x * x),
		Qext:  2 * s.ext / (x * x),
		Qback: abs2(s.back) / (x * x),
		G:     g,
	}
	for _, v := range []float64{r.Qsca, r.Qext, r.Qback, r.G} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("mie: size parameter %g: %w", x, ErrNotFinite)
		}
	}
	return r, nil
}

// nStop is the number of series terms for size parameter x
// (Wiscombe 1980).
func nStop(x float64) int {
	return int(x + 4*math.Cbrt(x) + 2)
}

func abs2(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }
