// Copyright 2025 go-specfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bessel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-specfunc/sf"
)

// Parallel tuning parameters
const (
	// MinParallelLen is the input length below which Transform stays on the
	// calling goroutine.
	MinParallelLen = 1024

	// ElemsPerStrip is the number of inputs a worker takes at a time.
	ElemsPerStrip = 256
)

// Transform writes j_l(input[i]) to output[i] for every i.
//
// Underflowing elements are written as 0 and do not fail the call. Any other
// failure stops the work and is returned with the offending index; output is
// then partially written.
func Transform(l int, input, output []float64) error {
	return TransformContext(context.Background(), l, input, output)
}

// TransformContext is Transform with cancellation. Long inputs are split into
// strips that are evaluated concurrently.
func TransformContext(ctx context.Context, l int, input, output []float64) error {
	if len(output) < len(input) {
		return fmt.Errorf("bessel.Transform: output has %d elements, need %d: %w",
			len(output), len(input), sf.ErrBadLength)
	}
	if len(input) < MinParallelLen {
		return transformStrip(ctx, l, 0, input, output)
	}

	numStrips := (len(input) + ElemsPerStrip - 1) / ElemsPerStrip
	work := make(chan int, numStrips)
	for strip := range numStrips {
		work <- strip
	}
	close(work)

	g, gctx := errgroup.WithContext(ctx)
	for range min(runtime.GOMAXPROCS(0), numStrips) {
		g.Go(func() error {
			for strip := range work {
				start := strip * ElemsPerStrip
				end := min(start+ElemsPerStrip, len(input))
				if err := transformStrip(gctx, l, start, input[start:end], output[start:end]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func transformStrip(ctx context.Context, l, offset int, input, output []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, x := range input {
		v, err := Jl(l, x)
		if err != nil && !errors.Is(err, sf.ErrUnderflow) {
			return fmt.Errorf("input[%d] = %v: %w", offset+i, x, err)
		}
		output[i] = v
	}
	return nil
}
