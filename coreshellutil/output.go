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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
)

var resultHeader = []string{
	"Mode",
	"Wavelength [μm]",
	"SpecificScattering [m²/kg]",
	"SpecificAbsorption [m²/kg]",
	"SpecificExtinction [m²/kg]",
	"SingleScatteringAlbedo",
	"Asymmetry",
}

func (r Result) values() []float64 {
	return []float64{
		r.Wavelength,
		r.SpecificScattering,
		r.SpecificAbsorption,
		r.ExtinctionUnit().Value(),
		r.SingleScatteringAlbedo(),
		r.Asymmetry,
	}
}

// WriteResults writes a table of results to the file at path, as a
// spreadsheet if the path ends in .xlsx and as CSV otherwise. If path is
// empty the CSV is written to w instead.
func WriteResults(w io.Writer, path string, results []Result) error {
	switch {
	case path == "":
		return writeCSV(w, results)
	case strings.ToLower(filepath.Ext(path)) == ".xlsx":
		return writeXLSX(path, results)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("coreshell: creating output file: %v", err)
		}
		if err := writeCSV(f, results); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}

func writeCSV(w io.Writer, results []Result) error {
	c := csv.NewWriter(w)
	if err := c.Write(resultHeader); err != nil {
		return err
	}
	for _, r := range results {
		line := []string{r.Name}
		for _, v := range r.values() {
			line = append(line, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := c.Write(line); err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}

func writeXLSX(path string, results []Result) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("optics")
	if err != nil {
		return err
	}
	row := sheet.AddRow()
	for _, h := range resultHeader {
		row.AddCell().SetString(h)
	}
	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Name)
		for _, v := range r.values() {
			row.AddCell().SetFloat(v)
		}
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("coreshell: saving spreadsheet: %v", err)
	}
	return nil
}
