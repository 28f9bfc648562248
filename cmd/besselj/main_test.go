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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalText(t *testing.T) {
	out, _, err := run(t, "", "eval", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.30116867893975")
	assert.Contains(t, out, "Closed Form")
}

func TestEvalJSON(t *testing.T) {
	out, _, err := run(t, "", "eval", "0", "1", "0", "-o", "json")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Rows, 2)
	assert.InEpsilon(t, 0.8414709848078965, rep.Rows[0].Value, 1e-15)
	assert.Equal(t, 1.0, rep.Rows[1].Value)
	assert.Equal(t, "origin", rep.Rows[1].Regime)
}

func TestEvalErrors(t *testing.T) {
	_, _, err := run(t, "", "eval", "x", "1")
	assert.Error(t, err)

	out, stderr, err := run(t, "", "eval", "--", "2", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain error")
	assert.Contains(t, out, "domain error")
	assert.Contains(t, stderr, "evaluation did not succeed")

	// Underflow is reported but does not fail the command.
	out, _, err = run(t, "", "eval", "200", "0.001")
	require.NoError(t, err)
	assert.Contains(t, out, "underflow")

	_, _, err = run(t, "", "eval", "1", "1", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestArray(t *testing.T) {
	out, _, err := run(t, "", "array", "5", "2", "--check", "-o", "yaml")
	require.NoError(t, err)
	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Rows, 6)
	assert.Equal(t, methodRecursion, rep.Method)
	assert.InEpsilon(t, 0.45464871341284063, rep.Rows[0].Value, 1e-13)
	require.NotNil(t, rep.Residual)
	assert.Less(t, *rep.Residual, 1e-14)

	out, _, err = run(t, "", "array", "3", "4", "--method", "steed")
	require.NoError(t, err)
	assert.Contains(t, out, "Continued Fraction")

	_, _, err = run(t, "", "array", "3", "1e6", "--method", "steed")
	assert.ErrorContains(t, err, "exceeded max number of iterations")

	_, _, err = run(t, "", "array", "3", "1", "--method", "bogus")
	assert.ErrorContains(t, err, "unknown method")
}

func TestBatch(t *testing.T) {
	input := `requests:
  - l: 3
    x: [0.5, 2.5]
  - lmax: 4
    x: [1, 7]
    method: steed
  - lmax: 2
    x: [1e6]
    method: steed
`
	out, _, err := run(t, input, "batch", "-", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 requests failed")

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 4)
	assert.Len(t, reports[0].Rows, 2)
	assert.Len(t, reports[1].Rows, 5)
	assert.Len(t, reports[2].Rows, 5)
	assert.NotEmpty(t, reports[3].Error)
}

func TestBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requests:\n  - l: 0\n    x: [3]\n"), 0o644))
	out, _, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0.047040002686622")

	_, _, err = run(t, "requests:\n  - l: 0\n", "batch", "-")
	assert.ErrorContains(t, err, "no arguments")

	_, _, err = run(t, "requests:\n  - order: 0\n", "batch", "-")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch level:")
	assert.Contains(t, out, "GOARCH:")
}
