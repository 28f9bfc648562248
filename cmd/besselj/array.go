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

const (
	methodRecursion = "recursion"
	methodSteed     = "steed"
)

func newArrayCmd(a *app) *cobra.Command {
	var (
		method string
		check  bool
	)
	cmd := &cobra.Command{
		Use:   "array LMAX X",
		Short: "Evaluate j_0 through j_LMAX at one argument",
		Example: `  besselj array 10 2.5
  besselj array 60 0.05 --method steed --check`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lmax, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("lmax %q: %w", args[0], err)
			}
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("argument %q: %w", args[1], err)
			}
			rep, err := evalArray(a.logger, method, lmax, x, check)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), a.format, []report{rep})
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", methodRecursion, "Array method: recursion or steed")
	cmd.Flags().BoolVar(&check, "check", false, "Report the three-term recurrence residual of the result")
	return cmd
}

func evalArray(logger *zap.Logger, method string, lmax int, x float64, check bool) (report, error) {
	if lmax < 0 {
		return report{}, fmt.Errorf("lmax must be non-negative, got %d", lmax)
	}
	out := make([]float64, lmax+1)
	var (
		err    error
		regime func(l int) bessel.Regime
	)
	switch method {
	case methodRecursion:
		err = bessel.JlArray(lmax, x, out)
		regime = func(l int) bessel.Regime {
			if l >= lmax {
				return bessel.Classify(l, x)
			}
			return bessel.RegimeRecursion
		}
	case methodSteed:
		err = bessel.JlSteedArray(lmax, x, out)
		regime = func(int) bessel.Regime { return bessel.RegimeContinuedFraction }
	default:
		return report{}, fmt.Errorf("unknown method %q (want %s or %s)", method, methodRecursion, methodSteed)
	}
	logger.Debug("array evaluated",
		zap.String("method", method), zap.Int("lmax", lmax), zap.Float64("x", x), zap.Error(err))
	if err != nil {
		return report{}, fmt.Errorf("%s array j_0..j_%d(%g): %w", method, lmax, x, err)
	}
	rep := report{Method: method, Rows: arrayRows(x, out, regime)}
	if check {
		r := bessel.RecurrenceResidual(x, out)
		rep.Residual = &r
	}
	return rep, nil
}
