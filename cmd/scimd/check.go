package main

import (
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-scimd/scimd"
)

var errCheckFailed = errors.New("scenario results exceed tolerance")

// result is one operation evaluated on one backend.
type result struct {
	Backend string
	Op      string
	Got     float64
	Want    float64
	RelErr  float64
	Tol     float64
	// Uniform is false when the lanes of the result differ.
	Uniform bool
}

func (r result) ok() bool { return r.Uniform && r.RelErr <= r.Tol }

// tolerance is the accepted relative error against the float64 reference:
// twice the rsqrt bound of the precision, which also covers one rounding of
// the exact operations.
func tolerance[T scimd.Floats]() float64 {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return 1e-6
	}
	return 2e-15
}

type scenarioOp[T scimd.Floats, R scimd.Register[T, R]] struct {
	op   string
	got  scimd.Vec[T, R]
	want float64
}

func evaluate[T scimd.Floats, R scimd.Register[T, R]](name string, x, y float64) []result {
	xv, yv := scimd.Splat[T, R](T(x)), scimd.Splat[T, R](T(y))
	ops := []scenarioOp[T, R]{
		{"x+y", xv.Add(yv), x + y},
		{"x-y", xv.Sub(yv), x - y},
		{"x*y", xv.Mul(yv), x * y},
		{"x/y", xv.Div(yv), x / y},
		{"sqrt(y)", scimd.Sqrt(yv).Value(), math.Sqrt(y)},
		{"x/sqrt(y)", xv.DivSqrt(scimd.Sqrt(yv)), x / math.Sqrt(y)},
		{"1/sqrt(y)", scimd.RSqrt(yv), 1 / math.Sqrt(y)},
	}

	tol := tolerance[T]()
	return lo.Map(ops, func(o scenarioOp[T, R], _ int) result {
		lanes := o.got.Data()
		got := float64(lanes[0])
		return result{
			Backend: name,
			Op:      o.op,
			Got:     got,
			Want:    o.want,
			RelErr:  relErr(got, o.want),
			Tol:     tol,
			Uniform: lo.EveryBy(lanes, func(l T) bool { return l == lanes[0] }),
		}
	})
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// scenario evaluates x op y in both precisions on the compiled backend and
// on the scalar backend.
func scenario(x, y float64) []result {
	active := scimd.CurrentName()
	var all []result
	all = append(all, evaluate[float32, scimd.Reg32](active+"/float32", x, y)...)
	all = append(all, evaluate[float64, scimd.Reg64](active+"/float64", x, y)...)
	all = append(all, evaluate[float32, scimd.ScalarReg32]("scalar/float32", x, y)...)
	all = append(all, evaluate[float64, scimd.ScalarReg64]("scalar/float64", x, y)...)
	return all
}

func runCheck(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	if !(y > 0) {
		return fmt.Errorf("--y must be positive, got %v", y)
	}

	results := scenario(x, y)
	log := scimd.Logger()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tOP\tRESULT\tREL ERR\tSTATUS")
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "FAIL"
			log.Warn("scenario result out of tolerance", "backend", r.Backend, "op", r.Op,
				"got", r.Got, "want", r.Want, "rel_err", r.RelErr, "uniform", r.Uniform)
		}
		fmt.Fprintf(w, "%s\t%s\t%.17g\t%.3g\t%s\n", r.Backend, r.Op, r.Got, r.RelErr, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed := lo.CountBy(results, func(r result) bool { return !r.ok() }); failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(results))
	}
	return nil
}
