package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-scimd/scimd"
)

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Go:     %s\n", runtime.Version())
	fmt.Fprintf(out, "GOOS:   %s\n", runtime.GOOS)
	fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "scimd level: %s\n", scimd.CurrentLevel())
	fmt.Fprintf(out, "scimd width: %d bytes\n", scimd.CurrentWidth())
	fmt.Fprintf(out, "lanes:       float32 %d, float64 %d\n", scimd.Lanes32, scimd.Lanes64)
	fmt.Fprintln(out)

	features := scimd.Features()
	if len(features) == 0 {
		fmt.Fprintln(out, "no CPU feature report for this architecture")
		return nil
	}

	fmt.Fprintf(out, "=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH)
	width := lo.Max(lo.Map(features, func(f scimd.Feature, _ int) int { return len(f.Name) }))
	for _, f := range features {
		note := ""
		if f.Required {
			note = " (required)"
		}
		fmt.Fprintf(out, "  %-*s %v%s\n", width+1, f.Name+":", f.Present, note)
	}

	missing := lo.FilterMap(features, func(f scimd.Feature, _ int) (string, bool) {
		return f.Name, f.Required && !f.Present
	})
	if len(missing) > 0 {
		fmt.Fprintf(out, "\nmissing: %s\n", strings.Join(missing, ", "))
	}
	return nil
}
