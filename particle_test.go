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
	"errors"
	"fmt"
	"testing"
)

// constSolver returns the same raw efficiencies for every particle.
func constSolver(qsca, qext, asym float64) Solver {
	return SolverFunc(func(_, _ float64, _ Medium) (RawEfficiencies, error) {
		return RawEfficiencies{Qsca: qsca, Qext: qext, Asym: asym}, nil
	})
}

var testMedium = Medium{NShell: complex(1.33, 0), NCore: complex(1.95, 0.79), Wavelength: 0.55}

func TestParticleScatter(t *testing.T) {
	var tests = []struct {
		raw  RawEfficiencies
		want Efficiencies
	}{
		{
			raw:  RawEfficiencies{Qsca: 1, Qext: 1.5, Asym: 0.8},
			want: Efficiencies{Qsca: 1, Qabs: 0.5, Asym: 0.8},
		},
		{
			// Scattering exceeding extinction is capped.
			raw:  RawEfficiencies{Qsca: 2, Qext: 1, Asym: 0.3},
			want: Efficiencies{Qsca: 1, Qabs: 0, Asym: 0.3},
		},
		{
			raw:  RawEfficiencies{Qsca: 0.25, Qext: 0.25, Asym: -0.1},
			want: Efficiencies{Qsca: 0.25, Qabs: 0, Asym: -0.1},
		},
		{
			raw:  RawEfficiencies{},
			want: Efficiencies{},
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%+v", test.raw), func(t *testing.T) {
			s := constSolver(test.raw.Qsca, test.raw.Qext, test.raw.Asym)
			have, err := ParticleScatter(s, Geometry{TotalRadius: 0.1, CoreFraction: 0.5}, testMedium)
			if err != nil {
				t.Fatal(err)
			}
			if have != test.want {
				t.Errorf("have %+v, want %+v", have, test.want)
			}
			if have.Qsca > test.raw.Qext {
				t.Errorf("Qsca %g exceeds Qext %g", have.Qsca, test.raw.Qext)
			}
		})
	}
}

func TestParticleScatterCoreRadius(t *testing.T) {
	var tests = []struct {
		radius, coreFraction, wantCore float64
	}{
		{radius: 2, coreFraction: 0, wantCore: 0},
		{radius: 2, coreFraction: 1, wantCore: 2},
		{radius: 2, coreFraction: 0.25, wantCore: 0.5},
		// Out-of-range fractions are passed through, not clamped.
		{radius: 2, coreFraction: 1.5, wantCore: 3},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.coreFraction), func(t *testing.T) {
			var haveTotal, haveCore float64
			var haveMedium Medium
			s := SolverFunc(func(totalRadius, coreRadius float64, m Medium) (RawEfficiencies, error) {
				haveTotal, haveCore, haveMedium = totalRadius, coreRadius, m
				return RawEfficiencies{Qsca: 1, Qext: 1}, nil
			})
			if _, err := Scatter(s, test.radius, test.coreFraction, testMedium.Wavelength,
				testMedium.NShell, testMedium.NCore); err != nil {
				t.Fatal(err)
			}
			if haveTotal != test.radius {
				t.Errorf("total radius: have %g, want %g", haveTotal, test.radius)
			}
			if haveCore != test.wantCore {
				t.Errorf("core radius: have %g, want %g", haveCore, test.wantCore)
			}
			if haveMedium != testMedium {
				t.Errorf("medium: have %+v, want %+v", haveMedium, testMedium)
			}
		})
	}
}

func TestParticleScatterError(t *testing.T) {
	errSolver := errors.New("solver did not converge")
	s := SolverFunc(func(_, _ float64, _ Medium) (RawEfficiencies, error) {
		return RawEfficiencies{Qsca: 1, Qext: 1}, errSolver
	})
	have, err := ParticleScatter(s, Geometry{TotalRadius: 1, CoreFraction: 0.5}, testMedium)
	if err != errSolver {
		t.Errorf("error should be passed through unchanged, but have %v", err)
	}
	if have != (Efficiencies{}) {
		t.Errorf("failed calculation should not return values, but have %+v", have)
	}
}
