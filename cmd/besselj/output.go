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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-specfunc/sf"
	"github.com/ajroetker/go-specfunc/sf/bessel"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

func checkFormat(f string) error {
	if !lo.Contains(formats, f) {
		return fmt.Errorf("unknown output format %q (want one of %v)", f, formats)
	}
	return nil
}

// row is one evaluated j_l(x).
type row struct {
	L      int     `json:"l" yaml:"l"`
	X      float64 `json:"x" yaml:"x"`
	Value  float64 `json:"value" yaml:"value"`
	Regime string  `json:"regime" yaml:"regime"`
	Status string  `json:"status" yaml:"status"`
}

// report is the output of one request.
type report struct {
	Method   string   `json:"method,omitempty" yaml:"method,omitempty"`
	Rows     []row    `json:"rows" yaml:"rows"`
	Residual *float64 `json:"residual,omitempty" yaml:"residual,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// statusText renders the status carried by err for the status column.
func statusText(err error) string {
	s, ok := sf.StatusOf(err)
	if !ok {
		return err.Error()
	}
	return s.String()
}

// fatal reports whether err should stop the command. Underflow still yields
// a usable value.
func fatal(err error) bool {
	s, ok := sf.StatusOf(err)
	return !ok || (s != sf.Success && s != sf.Underflow)
}

func arrayRows(x float64, vals []float64, regime func(l int) bessel.Regime) []row {
	return lo.Map(vals, func(v float64, l int) row {
		return row{L: l, X: x, Value: v, Regime: regime(l).String(), Status: sf.Success.String()}
	})
}

var titler = cases.Title(language.English)

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if rep.Method != "" {
			fmt.Fprintf(tw, "# %s\n", titler.String(rep.Method))
		}
		if rep.Error != "" {
			fmt.Fprintf(tw, "error: %s\n", rep.Error)
			continue
		}
		fmt.Fprintln(tw, "L\tX\tVALUE\tREGIME\tSTATUS")
		for _, r := range rep.Rows {
			fmt.Fprintf(tw, "%d\t%g\t%.17g\t%s\t%s\n", r.L, r.X, r.Value, titler.String(r.Regime), r.Status)
		}
		if rep.Residual != nil {
			fmt.Fprintf(tw, "recurrence residual: %.3g (%.1f eps)\n", *rep.Residual, *rep.Residual/sf.DblEpsilon)
		}
	}
	return tw.Flush()
}
