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

import "math"

// ParticleScatter calculates the scattering efficiency, absorption
// efficiency, and asymmetry parameter of the core-shell particle g
// using solver s.
//
// The scattering efficiency reported by s is capped at its extinction
// efficiency and absorption is whatever extinction remains, so absorption
// is never negative. Inputs are passed to s as they are, and any error
// from s is returned unchanged.
func ParticleScatter(s Solver, g Geometry, m Medium) (Efficiencies, error) {
	raw, err := s.Solve(g.TotalRadius, g.CoreRadius(), m)
	if err != nil {
		return Efficiencies{}, err
	}
	return correct(raw), nil
}

// Scatter is like ParticleScatter but accepts the particle radius [μm],
// core fraction, wavelength [μm], and the refractive indices of the shell
// and core directly.
func Scatter(s Solver, radius, coreFraction, wavelength float64, nShell, nCore complex128) (Efficiencies, error) {
	return ParticleScatter(s,
		Geometry{TotalRadius: radius, CoreFraction: coreFraction},
		Medium{NShell: nShell, NCore: nCore, Wavelength: wavelength},
	)
}

func correct(raw RawEfficiencies) Efficiencies {
	qsca := math.Min(raw.Qsca, raw.Qext)
	return Efficiencies{
		Qsca: qsca,
		Qabs: raw.Qext - qsca,
		Asym: raw.Asym,
	}
}
