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

// Package coreshell calculates the optical properties of spherical
// core-shell aerosol particles and integrates them over lognormal
// aerosol size distributions to obtain mode-averaged specific scattering
// and absorption cross-sections and asymmetry parameters.
//
// The Mie calculation itself is supplied by the caller as a Solver.
// Package github.com/spatialmodel/coreshell/science/mie provides one.
package coreshell

// Version gives the version number.
const Version = "0.4.0"

// Geometry describes the size and internal structure of a single particle.
type Geometry struct {
	// TotalRadius is the radius of the whole particle (core + shell) [μm].
	TotalRadius float64

	// CoreFraction is the fraction of the particle radius occupied by
	// its core, between 0 and 1.
	CoreFraction float64
}

// CoreRadius returns the radius of the particle core [μm].
func (g Geometry) CoreRadius() float64 {
	return g.CoreFraction * g.TotalRadius
}

// Medium holds the composition of a particle and the radiation it
// interacts with.
type Medium struct {
	// NShell and NCore are the complex refractive indices of the
	// shell and core materials.
	NShell, NCore complex128

	// Wavelength is the wavelength of the incident radiation [μm].
	Wavelength float64
}

// RawEfficiencies are the efficiency factors returned by a Solver,
// before any correction is applied.
type RawEfficiencies struct {
	Qsca float64 // scattering efficiency
	Qext float64 // extinction efficiency
	Asym float64 // asymmetry parameter
}

// Efficiencies are the corrected optical properties of a single particle.
type Efficiencies struct {
	Qsca float64 // scattering efficiency
	Qabs float64 // absorption efficiency
	Asym float64 // asymmetry parameter
}

// BulkOptical holds optical properties integrated over a size distribution.
type BulkOptical struct {
	// SpecificScattering is the scattering cross-section per unit
	// particle mass [m²/kg].
	SpecificScattering float64

	// SpecificAbsorption is the absorption cross-section per unit
	// particle mass [m²/kg].
	SpecificAbsorption float64

	// Asymmetry is the scattering-weighted mean asymmetry parameter.
	Asymmetry float64
}
