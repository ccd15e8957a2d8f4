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

	"github.com/spatialmodel/coreshell"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// integrands returns the contribution of each radius in the integration
// to total scattering and absorption.
func integrands(in *coreshell.Integration) (sca, abs plotter.XYs) {
	sca = make(plotter.XYs, len(in.Radii))
	abs = make(plotter.XYs, len(in.Radii))
	for i, r := range in.Radii {
		sca[i].X, abs[i].X = r, r
		sca[i].Y = in.Efficiencies[i].Qsca * in.Weights[i]
		abs[i].Y = in.Efficiencies[i].Qabs * in.Weights[i]
	}
	return sca, abs
}

// PlotIntegrand saves a figure of the scattering and absorption
// integrands of in against particle radius to path. The image format is
// chosen by the file extension.
func PlotIntegrand(in *coreshell.Integration, path string) error {
	if path == "" {
		return fmt.Errorf("coreshell: you need to specify a PlotFile")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("r=%g μm, σ=%g, core fraction %g, λ=%g μm",
		in.Mode.Radius, in.Mode.Sigma, in.CoreFraction, in.Medium.Wavelength)
	p.X.Label.Text = "Radius [μm]"
	p.Y.Label.Text = "Efficiency × lognormal weight"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	sca, abs := integrands(in)
	if err := plotutil.AddLines(p, "Scattering", sca, "Absorption", abs); err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("coreshell: saving plot: %v", err)
	}
	return nil
}
