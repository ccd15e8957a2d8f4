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
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/coreshell"
)

func testIntegration(t *testing.T) *coreshell.Integration {
	t.Helper()
	s := coreshell.SolverFunc(func(r, _ float64, _ coreshell.Medium) (coreshell.RawEfficiencies, error) {
		return coreshell.RawEfficiencies{Qsca: r, Qext: 2 * r, Asym: 0.5}, nil
	})
	it := coreshell.Integrator{Solver: s}
	in, err := it.Detail(coreshell.NewMode(0.1, 1.6, coreshell.Points(40)), 0.5,
		coreshell.Medium{NShell: 1.33, NCore: complex(1.95, 0.79), Wavelength: 0.55})
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func TestIntegrands(t *testing.T) {
	in := testIntegration(t)
	sca, abs := integrands(in)
	if len(sca) != len(in.Radii) || len(abs) != len(in.Radii) {
		t.Fatalf("have %d and %d points, want %d", len(sca), len(abs), len(in.Radii))
	}
	for i, r := range in.Radii {
		w := in.Weights[i]
		if sca[i].X != r || abs[i].X != r {
			t.Errorf("point %d: radius %g, %g, want %g", i, sca[i].X, abs[i].X, r)
		}
		if different(sca[i].Y, r*w) || different(abs[i].Y, r*w) {
			t.Errorf("point %d: have %g and %g, want %g", i, sca[i].Y, abs[i].Y, r*w)
		}
	}
}

func TestPlotIntegrand(t *testing.T) {
	in := testIntegration(t)
	for _, name := range []string{"integrand.png", "integrand.svg"} {
		path := filepath.Join(t.TempDir(), name)
		if err := PlotIntegrand(in, path); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if err := PlotIntegrand(in, ""); err == nil {
		t.Error("want an error without a file name")
	}
}
