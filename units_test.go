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
	"math"
	"testing"

	"github.com/ctessum/unit"
)

func TestSpecificCrossSection(t *testing.T) {
	s, err := specificCrossSection(unit.New(3, unit.Meter2), unit.New(2, unit.Meter3))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Check(Meter2PerKilogram); err != nil {
		t.Error(err)
	}
	if want := 3. / (2 * 1000); s.Value() != want {
		t.Errorf("have %g, want %g", s.Value(), want)
	}

	s, err = specificCrossSection(unit.New(-3, unit.Meter2), unit.New(2, unit.Meter3))
	if err != nil {
		t.Fatal(err)
	}
	if s.Value() != 0 {
		t.Errorf("negative area should be clamped to zero, have %g", s.Value())
	}

	if _, err := specificCrossSection(unit.New(3, unit.Meter), unit.New(2, unit.Meter3)); err == nil {
		t.Error("want an error for an area with the wrong dimensions")
	}
	if _, err := specificCrossSection(unit.New(3, unit.Meter2), unit.New(2, unit.Kilogram)); err == nil {
		t.Error("want an error for a volume with the wrong dimensions")
	}
}

func TestBulkOpticalUnits(t *testing.T) {
	b := BulkOptical{SpecificScattering: 3000, SpecificAbsorption: 1000, Asymmetry: 0.7}
	ext := b.ExtinctionUnit()
	if err := ext.Check(Meter2PerKilogram); err != nil {
		t.Error(err)
	}
	if ext.Value() != 4000 {
		t.Errorf("extinction: have %g, want 4000", ext.Value())
	}
	if ssa := b.SingleScatteringAlbedo(); ssa != 0.75 {
		t.Errorf("single scattering albedo: have %g, want 0.75", ssa)
	}
	if ssa := (BulkOptical{}).SingleScatteringAlbedo(); !math.IsNaN(ssa) {
		t.Errorf("single scattering albedo without extinction: have %g, want NaN", ssa)
	}
}

func TestMicrons(t *testing.T) {
	r := Microns(2.5)
	if err := r.Check(unit.Meter); err != nil {
		t.Error(err)
	}
	if math.Abs(r.Value()-2.5e-6) > 1.e-20 {
		t.Errorf("have %g, want 2.5e-6", r.Value())
	}
}

func TestWetVolume(t *testing.T) {
	in := Integration{
		CoreFraction: 0.5,
		Radii:        []float64{1, 2},
		Weights:      []float64{3, 1},
		DLogR:        0.5,
		Efficiencies: make([]Efficiencies, 2),
	}
	in.sum()
	// (1 μm × 3 m² + 2 μm × 1 m²) × 0.5 × 4/3
	want := 4. / 3. * 2.5e-6
	if math.Abs(in.WetVolume-want) > 1.e-20 {
		t.Errorf("wet volume: have %g, want %g", in.WetVolume, want)
	}
	if math.Abs(in.CoreVolume-want/8) > 1.e-20 {
		t.Errorf("core volume: have %g, want %g", in.CoreVolume, want/8)
	}
}
