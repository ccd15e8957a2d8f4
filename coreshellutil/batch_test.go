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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spatialmodel/coreshell"
)

func writeBatch(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

var batchDefaults = ModeSpec{
	Name:         "mode",
	Mode:         coreshell.NewMode(0.1, 1.6, coreshell.Points(50)),
	CoreFraction: 0.5,
	NShell:       complex(1.33, 0),
	NCore:        complex(1.95, 0.79),
	Wavelengths:  []float64{0.55},
}

func TestReadBatch(t *testing.T) {
	path := writeBatch(t, `
[[mode]]
Name = "coarse"
Radius = 1.5
Sigma = 2.0
CoreFraction = 0.0
NShell = "1.53+0.001i"
Wavelengths = [0.4, 0.7]

[[mode]]
NCore = "1.75+0.44i"
`)
	specs, err := ReadBatch(path, batchDefaults)
	if err != nil {
		t.Fatal(err)
	}
	coarse := batchDefaults
	coarse.Name = "coarse"
	coarse.Mode.Radius, coarse.Mode.Sigma = 1.5, 2.0
	coarse.CoreFraction = 0
	coarse.NShell = complex(1.53, 0.001)
	coarse.Wavelengths = []float64{0.4, 0.7}

	second := batchDefaults
	second.Name = "mode2"
	second.NCore = complex(1.75, 0.44)

	want := []ModeSpec{coarse, second}
	if !reflect.DeepEqual(specs, want) {
		t.Errorf("have %+v, want %+v", specs, want)
	}
}

func TestReadBatchErrors(t *testing.T) {
	var tests = []struct {
		name, contents string
		is             error
	}{
		{name: "no modes", contents: `Title = "empty"`},
		{name: "bad toml", contents: `[[mode]`},
		{name: "bad index", contents: "[[mode]]\nNShell = \"water\""},
		{name: "bad sigma", contents: "[[mode]]\nSigma = 0.5", is: coreshell.ErrInvalidMode},
		{name: "bad core", contents: "[[mode]]\nCoreFraction = 1.5", is: coreshell.ErrInvalidMode},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadBatch(writeBatch(t, test.contents), batchDefaults)
			if err == nil {
				t.Fatal("want an error")
			}
			if test.is != nil && !errors.Is(err, test.is) {
				t.Errorf("have error %v, want %v", err, test.is)
			}
		})
	}
	if _, err := ReadBatch("", batchDefaults); err == nil {
		t.Error("want an error for a missing batch file name")
	}
}

func TestSweep(t *testing.T) {
	s := coreshell.SolverFunc(func(_, _ float64, m coreshell.Medium) (coreshell.RawEfficiencies, error) {
		return coreshell.RawEfficiencies{Qsca: 1, Qext: 1 + m.Wavelength, Asym: 0.5}, nil
	})
	it := &coreshell.Integrator{Solver: coreshell.NewCachedSolver(s, 100)}
	b := batchDefaults
	b.Wavelengths = []float64{0.5, 1}
	rows, err := Sweep(it, batchDefaults, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("have %d rows, want 3", len(rows))
	}
	for i, wl := range []float64{0.55, 0.5, 1} {
		r := rows[i]
		if r.Wavelength != wl {
			t.Errorf("row %d: wavelength %g, want %g", i, r.Wavelength, wl)
		}
		if ratio := r.SpecificAbsorption / r.SpecificScattering; different(ratio, wl) {
			t.Errorf("row %d: absorption/scattering = %g, want %g", i, ratio, wl)
		}
	}

	bad := batchDefaults
	bad.Mode.Sigma = 1
	if _, err := Sweep(it, bad); !errors.Is(err, coreshell.ErrInvalidMode) {
		t.Errorf("have error %v", err)
	}
}
