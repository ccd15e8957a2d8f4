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
	"strings"

	"github.com/BurntSushi/toml"
)

// batchMode is one [[mode]] table in a batch file. Fields that are
// left out are nil.
type batchMode struct {
	Name         string
	Radius       *float64
	Sigma        *float64
	CoreFraction *float64
	NShell       *string
	NCore        *string
	Wavelengths  []float64
}

type batchFile struct {
	Mode []batchMode `toml:"mode"`
}

// ReadBatch reads the modes in the TOML batch file at path. Fields missing
// from a mode are taken from defaults, and the integration grid of every
// mode is the one in defaults.Mode.
func ReadBatch(path string, defaults ModeSpec) ([]ModeSpec, error) {
	if path == "" {
		return nil, fmt.Errorf("coreshell: you need to specify a BatchFile")
	}
	var f batchFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("coreshell: reading batch file: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		Log.WithField("keys", strings.Join(keys, ", ")).Warn("ignoring unknown batch file fields")
	}
	if len(f.Mode) == 0 {
		return nil, fmt.Errorf("coreshell: batch file %s has no [[mode]] tables", path)
	}
	specs := make([]ModeSpec, len(f.Mode))
	for i, bm := range f.Mode {
		s := defaults
		s.Name = bm.Name
		if s.Name == "" {
			s.Name = fmt.Sprintf("mode%d", i+1)
		}
		if bm.Radius != nil {
			s.Mode.Radius = *bm.Radius
		}
		if bm.Sigma != nil {
			s.Mode.Sigma = *bm.Sigma
		}
		if bm.CoreFraction != nil {
			s.CoreFraction = *bm.CoreFraction
		}
		if bm.NShell != nil {
			if s.NShell, err = parseIndex(s.Name+".NShell", *bm.NShell); err != nil {
				return nil, err
			}
		}
		if bm.NCore != nil {
			if s.NCore, err = parseIndex(s.Name+".NCore", *bm.NCore); err != nil {
				return nil, err
			}
		}
		if len(bm.Wavelengths) > 0 {
			s.Wavelengths = bm.Wavelengths
		}
		if err := s.Mode.Validate(); err != nil {
			return nil, fmt.Errorf("coreshell: batch mode %q: %w", s.Name, err)
		}
		if err := checkCoreFraction(s.CoreFraction); err != nil {
			return nil, fmt.Errorf("coreshell: batch mode %q: %w", s.Name, err)
		}
		specs[i] = s
	}
	return specs, nil
}

