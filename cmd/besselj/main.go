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

// Command besselj evaluates spherical Bessel functions from the command line
// and reports which method the engine chose for each request.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-specfunc/sf"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	format  string
	logger  *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "besselj",
		Short: "Evaluate spherical Bessel functions j_l(x)",
		Long: `besselj evaluates the spherical Bessel functions of the first kind.

Single values go through the regime-selecting evaluator; whole order ranges
use downward recursion or Steed's continued fraction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(a.format); err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(config.EncoderConfig),
				zapcore.AddSync(cmd.ErrOrStderr()),
				config.Level,
			)
			a.logger = zap.New(core).With(zap.String("cmd", cmd.Name()))
			sf.SetLogger(a.logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			sf.SetLogger(nil)
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", formatText, "Output format: text, json or yaml")

	root.AddCommand(
		newEvalCmd(a),
		newArrayCmd(a),
		newBatchCmd(a),
		newInfoCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
