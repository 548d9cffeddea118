// Copyright 2025 go-scimd Authors
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

// Command scimd reports which SIMD backend was compiled in, checks it
// against the running CPU, and evaluates a small arithmetic scenario on it.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-scimd/scimd"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scimd",
		Short: "Inspect the compiled scimd backend",
		Long: `scimd prints the instruction-set tier selected at build time, checks
that the running CPU supports it, and evaluates x op y on every backend.

The tier is chosen by GOAMD64 and GOEXPERIMENT=simd, and can be lowered
with the scimd_noavx512, scimd_noavx and scimd_nosse build tags.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				scimd.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", getEnvBool("SCIMD_VERBOSE", false), "Log backend selection and verification at debug level")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scimd v%s (%s) backend %s\n", version, commit, scimd.CurrentName())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the compiled backend and CPU features",
		RunE:  runInfo,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check that the CPU supports the compiled backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scimd.Verify(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s backend is supported\n", scimd.CurrentName())
			return nil
		},
	})

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate x op y on the active and scalar backends",
		RunE:  runCheck,
	}
	checkCmd.Flags().Float64("x", 3, "Left operand")
	checkCmd.Flags().Float64("y", 17, "Right operand (must be positive)")
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
