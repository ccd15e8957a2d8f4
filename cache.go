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
	"fmt"
	"math"
	"runtime"

	"github.com/ctessum/requestcache"
)

// CachedSolver is a Solver that keeps recent results of another Solver
// in memory. It is useful when the same particles are evaluated
// repeatedly, for example when several modes are integrated over the
// same grid. Errors are kept along with results, so the underlying Solver
// must be deterministic. A CachedSolver is safe for concurrent use.
type CachedSolver struct {
	cache *requestcache.Cache
}

type solveRequest struct {
	totalRadius, coreRadius float64
	m                       Medium
}

// solveResult carries solver errors through the cache as part of the
// result so that errors are memoized too.
type solveResult struct {
	raw RawEfficiencies
	err error
}

// NewCachedSolver returns a Solver that memoizes up to maxEntries results
// of s. Concurrent requests for a particle that is not cached yet may each
// be passed on to s, so s must be safe for concurrent use.
func NewCachedSolver(s Solver, maxEntries int) *CachedSolver {
	process := func(ctx context.Context, payload interface{}) (interface{}, error) {
		r := payload.(solveRequest)
		raw, err := s.Solve(r.totalRadius, r.coreRadius, r.m)
		return solveResult{raw: raw, err: err}, nil
	}
	return &CachedSolver{
		cache: requestcache.NewCache(process, runtime.GOMAXPROCS(0),
			requestcache.Memory(maxEntries)),
	}
}

// Solve implements Solver.
func (c *CachedSolver) Solve(totalRadius, coreRadius float64, m Medium) (RawEfficiencies, error) {
	req := c.cache.NewRequest(context.Background(),
		solveRequest{totalRadius: totalRadius, coreRadius: coreRadius, m: m},
		cacheKey(totalRadius, coreRadius, m))
	result, err := req.Result()
	if err != nil {
		return RawEfficiencies{}, err
	}
	r := result.(solveResult)
	if r.err != nil {
		return RawEfficiencies{}, r.err
	}
	return r.raw, nil
}

// Misses returns the number of requests that had to be passed on to the
// underlying Solver and the total number of requests received.
func (c *CachedSolver) Misses() (misses, requests int) {
	r := c.cache.Requests()
	return r[len(r)-1], r[0]
}

// cacheKey represents the inputs by their exact bit patterns so that
// values which print identically are not confused.
func cacheKey(totalRadius, coreRadius float64, m Medium) string {
	return fmt.Sprintf("%x_%x_%x_%x_%x_%x_%x",
		math.Float64bits(totalRadius), math.Float64bits(coreRadius),
		math.Float64bits(real(m.NShell)), math.Float64bits(imag(m.NShell)),
		math.Float64bits(real(m.NCore)), math.Float64bits(imag(m.NCore)),
		math.Float64bits(m.Wavelength))
}
