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
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Integrator integrates single-particle optical properties over
// lognormal size distributions.
type Integrator struct {
	// Solver calculates the optical properties of individual particles.
	Solver Solver

	// Workers is the maximum number of particles to evaluate
	// concurrently. Values less than 2 evaluate particles one at a time.
	// The result does not depend on Workers.
	Workers int
}

// Integration holds the intermediate and final results of integrating
// over a size distribution.
type Integration struct {
	Mode         Mode
	CoreFraction float64
	Medium       Medium

	// Radii are the grid radii [μm] and DLogR is the spacing between
	// them in natural-log units.
	Radii []float64
	DLogR float64

	// Weights are the lognormal kernel values at each radius.
	Weights []float64

	// Efficiencies are the corrected particle properties at each radius.
	Efficiencies []Efficiencies

	// SumSca, SumAbs, and SumG are the kernel-weighted integrals of
	// scattering efficiency, absorption efficiency, and asymmetry times
	// scattering efficiency.
	SumSca, SumAbs, SumG float64

	// WetVolume is the kernel-weighted integral of particle volume and
	// CoreVolume is the same for the particle cores. CoreVolume is
	// diagnostic only; it does not enter BulkOptical.
	WetVolume, CoreVolume float64

	BulkOptical
}

// Integrate calculates the bulk optical properties of particles
// distributed according to mode, each with core fraction coreFraction
// and composition m.
func (it *Integrator) Integrate(mode Mode, coreFraction float64, m Medium) (BulkOptical, error) {
	in, err := it.Detail(mode, coreFraction, m)
	if err != nil {
		return BulkOptical{}, err
	}
	return in.BulkOptical, nil
}

// Detail is like Integrate but returns the full Integration. When the
// distribution turns out to be degenerate, the Integration is returned
// along with an error wrapping ErrDegenerateDistribution.
func (it *Integrator) Detail(mode Mode, coreFraction float64, m Medium) (*Integration, error) {
	if it.Solver == nil {
		return nil, errors.New("coreshell: Integrator has no Solver")
	}
	if err := validate(mode, coreFraction, m); err != nil {
		return nil, err
	}
	in := &Integration{
		Mode:         mode,
		CoreFraction: coreFraction,
		Medium:       m,
	}
	in.Radii, in.DLogR = mode.Grid()
	in.Weights = mode.Weights(in.Radii)

	var err error
	in.Efficiencies, err = it.evaluate(in.Radii, coreFraction, m)
	if err != nil {
		return nil, err
	}
	in.sum()
	if err := in.normalize(); err != nil {
		return in, err
	}
	return in, nil
}

// IntegrateMode calculates the bulk optical properties of a lognormal
// mode with mode radius modeRadius [μm] and geometric standard deviation
// modeSigma, where every particle has core fraction coreFraction and shell
// and core refractive indices nShell and nCore, at wavelength [μm].
// The integration grid defaults to NewMode's and can be changed with opts.
func IntegrateMode(s Solver, coreFraction float64, nShell, nCore complex128, wavelength, modeRadius, modeSigma float64, opts ...ModeOption) (BulkOptical, error) {
	it := Integrator{Solver: s}
	return it.Integrate(
		NewMode(modeRadius, modeSigma, opts...),
		coreFraction,
		Medium{NShell: nShell, NCore: nCore, Wavelength: wavelength},
	)
}

func validate(mode Mode, coreFraction float64, m Medium) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if !(coreFraction >= 0 && coreFraction <= 1) {
		return &ValidationError{Name: "CoreFraction", Value: coreFraction, Want: "between 0 and 1"}
	}
	if !(m.Wavelength > 0) || math.IsInf(m.Wavelength, 0) {
		return &ValidationError{Name: "Wavelength", Value: m.Wavelength, Want: ">0"}
	}
	return nil
}

// evaluate calculates the particle properties at each radius. Results
// are stored by grid index so that the order of evaluation does not
// affect the sums.
func (it *Integrator) evaluate(radii []float64, coreFraction float64, m Medium) ([]Efficiencies, error) {
	eff := make([]Efficiencies, len(radii))
	if it.Workers < 2 {
		for i, r := range radii {
			e, err := ParticleScatter(it.Solver, Geometry{TotalRadius: r, CoreFraction: coreFraction}, m)
			if err != nil {
				return nil, err
			}
			eff[i] = e
		}
		return eff, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(it.Workers)
	for i, r := range radii {
		i, r := i, r
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil // Another particle already failed.
			}
			e, err := ParticleScatter(it.Solver, Geometry{TotalRadius: r, CoreFraction: coreFraction}, m)
			if err != nil {
				return err
			}
			eff[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return eff, nil
}

// sum folds the grid into the kernel-weighted integrals.
func (in *Integration) sum() {
	n := len(in.Radii)
	qsca := make([]float64, n)
	qabs := make([]float64, n)
	gsca := make([]float64, n)
	for i, e := range in.Efficiencies {
		qsca[i] = e.Qsca
		qabs[i] = e.Qabs
		gsca[i] = e.Asym * e.Qsca
	}
	in.SumSca = floats.Dot(qsca, in.Weights) * in.DLogR
	in.SumAbs = floats.Dot(qabs, in.Weights) * in.DLogR
	in.SumG = floats.Dot(gsca, in.Weights) * in.DLogR

	// V = 4/3 r A for a sphere with cross-sectional area A.
	volume := unit.Mul(Microns(floats.Dot(in.Radii, in.Weights)*in.DLogR), unit.New(4./3., unit.Meter2))
	in.WetVolume = volume.Value()
	in.CoreVolume = math.Pow(in.CoreFraction, 3) * in.WetVolume
}

// normalize converts the integrals into mass-specific cross-sections.
// The kernel is an unnormalized cross-sectional area density, so the
// sums are areas and WetVolume is a volume, all scaled by the same
// constant, which cancels.
func (in *Integration) normalize() error {
	if !(in.WetVolume > 0) {
		return fmt.Errorf("%w: integrated wet volume is %g", ErrDegenerateDistribution, in.WetVolume)
	}
	if !(in.SumSca > 0) {
		return fmt.Errorf("%w: integrated scattering cross-section is %g", ErrDegenerateDistribution, in.SumSca)
	}
	volume := unit.New(in.WetVolume, unit.Meter3)
	sca, err := specificCrossSection(unit.New(in.SumSca, unit.Meter2), volume)
	if err != nil {
		return err
	}
	abs, err := specificCrossSection(unit.New(in.SumAbs, unit.Meter2), volume)
	if err != nil {
		return err
	}
	in.BulkOptical = BulkOptical{
		SpecificScattering: sca.Value(),
		SpecificAbsorption: abs.Value(),
		Asymmetry:          in.SumG / in.SumSca,
	}
	return nil
}
