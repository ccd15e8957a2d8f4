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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default integration grid settings.
const (
	DefaultRMin    = 1.e-3 // [μm]
	DefaultRMax    = 100.  // [μm]
	DefaultNPoints = 200
)

// Mode describes a lognormal aerosol size distribution and the grid
// used to integrate over it.
type Mode struct {
	// Radius is the geometric mean (mode) radius [μm].
	Radius float64

	// Sigma is the geometric standard deviation. It must be greater than 1.
	Sigma float64

	// RMin and RMax are the smallest and largest particle radii
	// included in the integration [μm].
	RMin, RMax float64

	// NPoints is the number of radii in the integration grid.
	NPoints int
}

// ModeOption changes the integration grid of a Mode.
type ModeOption func(*Mode)

// RadiusRange sets the smallest and largest radii [μm] in the grid.
func RadiusRange(rMin, rMax float64) ModeOption {
	return func(m *Mode) {
		m.RMin, m.RMax = rMin, rMax
	}
}

// Points sets the number of radii in the grid.
func Points(n int) ModeOption {
	return func(m *Mode) {
		m.NPoints = n
	}
}

// NewMode returns a lognormal mode with mode radius radius [μm] and
// geometric standard deviation sigma, integrated over DefaultNPoints radii
// between DefaultRMin and DefaultRMax unless changed by opts.
func NewMode(radius, sigma float64, opts ...ModeOption) Mode {
	m := Mode{
		Radius:  radius,
		Sigma:   sigma,
		RMin:    DefaultRMin,
		RMax:    DefaultRMax,
		NPoints: DefaultNPoints,
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Validate returns a *ValidationError if the mode cannot be integrated.
func (m Mode) Validate() error {
	switch {
	case !(m.Radius > 0) || math.IsInf(m.Radius, 0):
		return &ValidationError{Name: "ModeRadius", Value: m.Radius, Want: ">0"}
	case !(m.Sigma > 1) || math.IsInf(m.Sigma, 0):
		return &ValidationError{Name: "ModeSigma", Value: m.Sigma, Want: ">1"}
	case !(m.RMin > 0):
		return &ValidationError{Name: "RMin", Value: m.RMin, Want: ">0"}
	case !(m.RMax > m.RMin) || math.IsInf(m.RMax, 0):
		return &ValidationError{Name: "RMax", Value: m.RMax, Want: fmt.Sprintf(">RMin (%g)", m.RMin)}
	case m.NPoints < 2:
		return &ValidationError{Name: "NPoints", Value: m.NPoints, Want: ">=2"}
	}
	return nil
}

// Grid returns the integration radii [μm], which are evenly spaced in
// log space from m.RMin to m.RMax inclusive, along with the spacing
// between them in natural-log units.
func (m Mode) Grid() (radii []float64, dLogR float64) {
	radii = floats.LogSpan(make([]float64, m.NPoints), m.RMin, m.RMax)
	dLogR = (math.Log(m.RMax) - math.Log(m.RMin)) / float64(m.NPoints-1)
	return radii, dLogR
}

// Weight returns the unnormalized lognormal cross-sectional area density
// of the mode at radius r [μm].
func (m Mode) Weight(r float64) float64 {
	x := math.Log(r/m.Radius) / math.Log(m.Sigma)
	return math.Exp(-0.5 * x * x)
}

// Weights returns the Weight at each of radii.
func (m Mode) Weights(radii []float64) []float64 {
	w := make([]float64, len(radii))
	for i, r := range radii {
		w[i] = m.Weight(r)
	}
	return w
}
