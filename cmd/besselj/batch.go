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
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// batchFile is the YAML request file read by the batch command:
//
//	requests:
//	  - l: 3
//	    x: [0.5, 2.5, 40]
//	  - lmax: 20
//	    x: [7]
//	    method: steed
//	    check: true
type batchFile struct {
	Requests []batchRequest `yaml:"requests"`
}

// batchRequest asks either for j_L at each X, or, when LMax is set, for the
// orders 0..LMax at each X.
type batchRequest struct {
	L      int       `yaml:"l"`
	LMax   *int      `yaml:"lmax"`
	X      []float64 `yaml:"x"`
	Method string    `yaml:"method"`
	Check  bool      `yaml:"check"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate the requests listed in a YAML file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			reqs, err := readBatch(r)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			reports := runBatch(a.logger, reqs)
			failed := lo.CountBy(reports, func(rep report) bool { return rep.Error != "" })
			a.logger.Info("batch finished", zap.Int("requests", len(reports)), zap.Int("failed", failed))
			if err := writeReports(cmd.OutOrStdout(), a.format, reports); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d requests failed", failed, len(reports))
			}
			return nil
		},
	}
}

func readBatch(r io.Reader) ([]batchRequest, error) {
	var bf batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil {
		return nil, err
	}
	for i, req := range bf.Requests {
		if len(req.X) == 0 {
			return nil, fmt.Errorf("request %d: no arguments in x", i)
		}
	}
	return bf.Requests, nil
}

// runBatch evaluates every request and argument; failures are recorded in
// the report rather than stopping the batch.
func runBatch(logger *zap.Logger, reqs []batchRequest) []report {
	var reports []report
	for _, req := range reqs {
		if req.LMax == nil {
			rows, err := evalRows(logger, req.L, req.X)
			rep := report{Rows: rows}
			if err != nil {
				rep.Error = err.Error()
			}
			reports = append(reports, rep)
			continue
		}
		method := lo.Ternary(req.Method == "", methodRecursion, req.Method)
		for _, x := range req.X {
			rep, err := evalArray(logger, method, *req.LMax, x, req.Check)
			if err != nil {
				rep = report{Method: method, Error: err.Error()}
			}
			reports = append(reports, rep)
		}
	}
	return reports
}
