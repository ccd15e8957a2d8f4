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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/coreshell"
	"github.com/spf13/cast"
)

// parseIndex parses a complex refractive index such as "1.53+0.01i".
// A purely real value such as "1.33" is also accepted.
func parseIndex(name, s string) (complex128, error) {
	s = strings.TrimSpace(os.ExpandEnv(s))
	n, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("coreshell: invalid refractive index %s=%q: it should be written like 1.53+0.01i", name, s)
	}
	return n, nil
}

// refractiveIndices reads the shell and core refractive indices.
func refractiveIndices(cfg *viper.Viper) (nShell, nCore complex128, err error) {
	nShell, err = parseIndex("NShell", cfg.GetString("NShell"))
	if err != nil {
		return 0, 0, err
	}
	nCore, err = parseIndex("NCore", cfg.GetString("NCore"))
	if err != nil {
		return 0, 0, err
	}
	return nShell, nCore, nil
}

// checkCoreFraction makes sure the core fits inside the particle.
func checkCoreFraction(cf float64) error {
	if !(cf >= 0 && cf <= 1) {
		return &coreshell.ValidationError{Name: "CoreFraction", Value: cf, Want: "within [0, 1]"}
	}
	return nil
}

// toFloat64Slice converts a configuration value holding a list of
// numbers, either as a list or as a comma- or space-separated string,
// into a slice of float64.
func toFloat64Slice(v interface{}) ([]float64, error) {
	items, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, err
	}
	var o []float64
	for _, item := range items {
		for _, f := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == '[' || r == ']' }) {
			x, err := cast.ToFloat64E(strings.TrimSpace(f))
			if err != nil {
				return nil, err
			}
			o = append(o, x)
		}
	}
	if len(o) == 0 {
		return nil, fmt.Errorf("no values in %v", v)
	}
	return o, nil
}

// modeConfig reads the lognormal mode and its integration grid.
func modeConfig(cfg *viper.Viper) (coreshell.Mode, error) {
	m := coreshell.NewMode(cfg.GetFloat64("ModeRadius"), cfg.GetFloat64("ModeSigma"),
		coreshell.RadiusRange(cfg.GetFloat64("RMin"), cfg.GetFloat64("RMax")),
		coreshell.Points(cfg.GetInt("NPoints")))
	return m, m.Validate()
}

// modeSpec reads everything needed to calculate one mode over a list
// of wavelengths.
func modeSpec(cfg *viper.Viper) (ModeSpec, error) {
	mode, err := modeConfig(cfg)
	if err != nil {
		return ModeSpec{}, err
	}
	nShell, nCore, err := refractiveIndices(cfg)
	if err != nil {
		return ModeSpec{}, err
	}
	cf := cfg.GetFloat64("CoreFraction")
	if err := checkCoreFraction(cf); err != nil {
		return ModeSpec{}, err
	}
	wavelengths, err := toFloat64Slice(cfg.Get("Wavelengths"))
	if err != nil {
		return ModeSpec{}, fmt.Errorf("coreshell: reading 'Wavelengths': %v", err)
	}
	return ModeSpec{
		Name:         "mode",
		Mode:         mode,
		CoreFraction: cf,
		NShell:       nShell,
		NCore:        nCore,
		Wavelengths:  wavelengths,
	}, nil
}

// checkOutputFile expands any environment variables in the output file
// path and makes sure its directory exists. An empty path is allowed.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return f, nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("coreshell: the output file directory doesn't exist: %v", err)
	}
	return f, nil
}
