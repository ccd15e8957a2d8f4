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
)

var (
	// ErrInvalidMode is wrapped by every error returned when a size
	// distribution or particle configuration fails validation.
	ErrInvalidMode = errors.New("coreshell: invalid size distribution configuration")

	// ErrDegenerateDistribution is returned when the integrated scattering
	// cross-section or wet volume is not positive, so that the bulk
	// properties cannot be normalized.
	ErrDegenerateDistribution = errors.New("coreshell: degenerate size distribution")
)

// ValidationError is returned when a configuration variable is outside
// of its allowed range.
type ValidationError struct {
	// Name is the name of the offending variable.
	Name string

	// Value is the value it was set to.
	Value interface{}

	// Want describes the allowed range.
	Want string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("coreshell: %s=%v but should be %s", err.Name, err.Value, err.Want)
}

// Unwrap allows ValidationError to be matched against ErrInvalidMode.
func (err *ValidationError) Unwrap() error { return ErrInvalidMode }
