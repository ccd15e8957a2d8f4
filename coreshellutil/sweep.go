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

package coreshellutil

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/coreshell"
)

// ModeSpec specifies a named lognormal mode of core-shell particles and
// the wavelengths [μm] at which to calculate its optical properties.
type ModeSpec struct {
	Name          string
	Mode          coreshell.Mode
	CoreFraction  float64
	NShell, NCore complex128
	Wavelengths   []float64
}

// Result holds the bulk optical properties of one mode at one wavelength.
type Result struct {
	Name       string
	Wavelength float64 // [μm]
	coreshell.BulkOptical
}

// Sweep calculates the bulk optical properties of each of specs at each
// of its wavelengths, in order.
func Sweep(it *coreshell.Integrator, specs ...ModeSpec) ([]Result, error) {
	var results []Result
	for _, s := range specs {
		for _, wl := range s.Wavelengths {
			b, err := it.Integrate(s.Mode, s.CoreFraction, coreshell.Medium{
				NShell:     s.NShell,
				NCore:      s.NCore,
				Wavelength: wl,
			})
			if err != nil {
				return nil, fmt.Errorf("coreshell: mode %q at wavelength %g μm: %w", s.Name, wl, err)
			}
			Log.WithFields(logrus.Fields{
				"mode":       s.Name,
				"wavelength": wl,
				"scattering": b.SpecificScattering,
				"absorption": b.SpecificAbsorption,
				"asymmetry":  b.Asymmetry,
			}).Info("integrated mode")
			results = append(results, Result{Name: s.Name, Wavelength: wl, BulkOptical: b})
		}
	}
	if c, ok := it.Solver.(*coreshell.CachedSolver); ok {
		misses, requests := c.Misses()
		Log.WithFields(logrus.Fields{
			"misses":   misses,
			"requests": requests,
		}).Debug("particle cache")
	}
	return results, nil
}
