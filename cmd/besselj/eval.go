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

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-specfunc/sf/bessel"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval L X [X...]",
		Short: "Evaluate j_L at one or more arguments",
		Example: `  besselj eval 0 1
  besselj eval 40 10 40 400 -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order %q: %w", args[0], err)
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			rows, err := evalRows(a.logger, l, xs)
			if werr := writeReports(cmd.OutOrStdout(), a.format, []report{{Rows: rows}}); werr != nil {
				return werr
			}
			return err
		},
	}
}

// evalRows evaluates j_l at every x. The first fatal error is returned after
// all rows are built.
func evalRows(logger *zap.Logger, l int, xs []float64) ([]row, error) {
	rows := make([]row, 0, len(xs))
	var firstErr error
	for _, x := range xs {
		v, err := bessel.Jl(l, x)
		regime := bessel.Classify(l, x)
		logger.Debug("evaluated",
			zap.Int("l", l), zap.Float64("x", x),
			zap.Stringer("regime", regime), zap.Float64("value", v))
		if err != nil {
			logger.Warn("evaluation did not succeed", zap.Int("l", l), zap.Float64("x", x), zap.Error(err))
			if fatal(err) && firstErr == nil {
				firstErr = fmt.Errorf("j_%d(%g): %w", l, x, err)
			}
		}
		rows = append(rows, row{L: l, X: x, Value: v, Regime: regime.String(), Status: statusText(err)})
	}
	return rows, firstErr
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		xs[i] = x
	}
	return xs, nil
}
