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

	"github.com/ctessum/unit"
)

// MetersPerMicron converts radii from the μm used for particle geometry
// to the m used for volumes.
const MetersPerMicron = 1.e-6

// rhoWater is the density of pure water [kg/m³].
const rhoWater = 1.e3

// RhoWater is the density of pure water.
func RhoWater() *unit.Unit {
	return unit.New(rhoWater, unit.KilogramPerMeter3)
}

// Meter2PerKilogram is the dimension of a specific (mass-normalized)
// cross-section.
var Meter2PerKilogram = unit.Dimensions{
	unit.LengthDim: 2,
	unit.MassDim:   -1,
}

// Microns returns r [μm] as a length.
func Microns(r float64) *unit.Unit {
	return unit.New(r*MetersPerMicron, unit.Meter)
}

// specificCrossSection divides the cross-section area by the mass of
// water occupying volume, clamping negative areas to zero.
func specificCrossSection(area, volume *unit.Unit) (*unit.Unit, error) {
	a := unit.Max(area, unit.New(0, area.Dimensions()))
	s := unit.Div(a, unit.Mul(volume, RhoWater()))
	if err := s.Check(Meter2PerKilogram); err != nil {
		return nil, fmt.Errorf("coreshell: specific cross-section: %v", err)
	}
	return s, nil
}

// ScatteringUnit returns the specific scattering cross-section with
// its dimensions attached.
func (b BulkOptical) ScatteringUnit() *unit.Unit {
	return unit.New(b.SpecificScattering, Meter2PerKilogram)
}

// AbsorptionUnit returns the specific absorption cross-section with
// its dimensions attached.
func (b BulkOptical) AbsorptionUnit() *unit.Unit {
	return unit.New(b.SpecificAbsorption, Meter2PerKilogram)
}

// ExtinctionUnit returns the sum of the specific scattering and
// absorption cross-sections.
func (b BulkOptical) ExtinctionUnit() *unit.Unit {
	return unit.Add(b.ScatteringUnit(), b.AbsorptionUnit())
}

// SingleScatteringAlbedo returns the fraction of extinction caused by
// scattering. It is NaN when there is no extinction.
func (b BulkOptical) SingleScatteringAlbedo() float64 {
	return b.SpecificScattering / (b.SpecificScattering + b.SpecificAbsorption)
}
