package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Inputs are drawn from [-1, 1], so an absolute bound on the difference
// to the scalar reference is meaningful.
const (
	tolerance32 = 1e-5
	tolerance64 = 1e-12
)

type checkResult struct {
	KernelSet  string  `yaml:"kernel_set"`
	Precision  string  `yaml:"precision"`
	Op         string  `yaml:"op"`
	MaxAbsDiff float64 `yaml:"max_abs_diff"`
	Tolerance  float64 `yaml:"tolerance"`
	OK         bool    `yaml:"ok"`
}

type verifyReport struct {
	Seed    int64         `yaml:"seed"`
	Samples int           `yaml:"samples"`
	Failed  int           `yaml:"failed"`
	Results []checkResult `yaml:"results"`
}

func newVerifyCmd(opts *options) *cobra.Command {
	var (
		samples int
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check every executable kernel set against the scalar reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if samples <= 0 {
				return fmt.Errorf("--samples must be positive, got %d", samples)
			}
			report := runVerify(registry.Global.Supported(cpu.DetectFeatures()), samples, seed)
			for _, r := range report.Results {
				opts.logger.Debug("checked", "kernel_set", r.KernelSet, "precision", r.Precision,
					"op", r.Op, "max_abs_diff", r.MaxAbsDiff)
			}
			if err := writeReport(cmd.OutOrStdout(), opts.format, report, report.writeText); err != nil {
				return err
			}
			if report.Failed > 0 {
				opts.logger.Error("kernel sets disagree with scalar reference", "failed", report.Failed)
				return fmt.Errorf("%d of %d checks exceeded tolerance", report.Failed, len(report.Results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 1000, "random inputs per operation")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the input generator")
	return cmd
}

func runVerify(entries []registry.Entry, samples int, seed int64) verifyReport {
	report := verifyReport{Seed: seed, Samples: samples}
	for _, e := range entries {
		report.Results = append(report.Results,
			checkSet(e.Name, "f32", e.F32, samples, seed, tolerance32)...)
		report.Results = append(report.Results,
			checkSet(e.Name, "f64", e.F64, samples, seed, tolerance64)...)
	}
	for _, r := range report.Results {
		if !r.OK {
			report.Failed++
		}
	}
	return report
}

func (r verifyReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel set\tPrecision\tOp\tMax |diff|\tTolerance\tResult\n")
	fmt.Fprintf(tw, "----------\t---------\t--\t----------\t---------\t------\n")
	for _, c := range r.Results {
		result := "ok"
		if !c.OK {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3g\t%.0e\t%s\n",
			c.KernelSet, c.Precision, c.Op, c.MaxAbsDiff, c.Tolerance, result)
	}
	fmt.Fprintf(tw, "\n%d checks, %d failed (seed %d, %d samples)\n",
		len(r.Results), r.Failed, r.Seed, r.Samples)
	return tw.Flush()
}

type operands[T layout.Float] struct {
	a, b layout.Vec3[T]
	c, d layout.Vec4[T]
	m, n layout.Mat3[T]
	p, q layout.Mat4[T]
	s    T
}

type check[T layout.Float] struct {
	name string
	run  func(set registry.Set[T], in *operands[T]) []T
}

// checkSet runs every operation of set and of the scalar reference on the
// same inputs and records the largest difference, padding lanes included.
func checkSet[T layout.Float](name, precision string, set registry.Set[T], samples int, seed int64, tol float64) []checkResult {
	var ref registry.Set[T] = scalar.Kernels[T]{}
	checks := checksFor[T]()
	worst := make([]float64, len(checks))

	rng := rand.New(rand.NewSource(seed))
	for range samples {
		in := randomOperands[T](rng)
		for i, c := range checks {
			worst[i] = math.Max(worst[i], maxAbsDiff(c.run(set, &in), c.run(ref, &in)))
		}
	}

	results := make([]checkResult, len(checks))
	for i, c := range checks {
		results[i] = checkResult{
			KernelSet:  name,
			Precision:  precision,
			Op:         c.name,
			MaxAbsDiff: worst[i],
			Tolerance:  tol,
			OK:         worst[i] <= tol,
		}
	}
	return results
}

func checksFor[T layout.Float]() []check[T] {
	return []check[T]{
		{"add3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.AddVec3(&out, &in.a, &in.b)
			return out[:]
		}},
		{"sub3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.SubVec3(&out, &in.a, &in.b)
			return out[:]
		}},
		{"scale3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.ScaleVec3(&out, in.s, &in.a)
			return out[:]
		}},
		{"hadamard3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.HadamardVec3(&out, &in.a, &in.b)
			return out[:]
		}},
		{"dot3", func(s registry.Set[T], in *operands[T]) []T {
			return []T{s.DotVec3(&in.a, &in.b)}
		}},
		{"cross3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.CrossVec3(&out, &in.a, &in.b)
			return out[:]
		}},
		{"length3", func(s registry.Set[T], in *operands[T]) []T {
			return []T{s.LengthSquareVec3(&in.a), s.LengthVec3(&in.a)}
		}},
		{"normalize3", func(s registry.Set[T], in *operands[T]) []T {
			out := in.a
			s.NormalizeInPlaceVec3(&out)
			return out[:]
		}},
		{"lerp3", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec3[T]
			s.LerpVec3(&out, &in.a, &in.b, in.s)
			return out[:]
		}},
		{"add4", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec4[T]
			s.AddVec4(&out, &in.c, &in.d)
			return out[:]
		}},
		{"sub4", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec4[T]
			s.SubVec4(&out, &in.c, &in.d)
			return out[:]
		}},
		{"scale4", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec4[T]
			s.ScaleVec4(&out, in.s, &in.c)
			return out[:]
		}},
		{"hadamard4", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec4[T]
			s.HadamardVec4(&out, &in.c, &in.d)
			return out[:]
		}},
		{"dot4", func(s registry.Set[T], in *operands[T]) []T {
			return []T{s.DotVec4(&in.c, &in.d)}
		}},
		{"length4", func(s registry.Set[T], in *operands[T]) []T {
			return []T{s.LengthSquareVec4(&in.c), s.LengthVec4(&in.c)}
		}},
		{"normalize4", func(s registry.Set[T], in *operands[T]) []T {
			out := in.c
			s.NormalizeInPlaceVec4(&out)
			return out[:]
		}},
		{"lerp4", func(s registry.Set[T], in *operands[T]) []T {
			var out layout.Vec4[T]
			s.LerpVec4(&out, &in.c, &in.d, in.s)
			return out[:]
		}},
		{"mat3 linear", func(s registry.Set[T], in *operands[T]) []T {
			var sum, diff, scaled, had layout.Mat3[T]
			s.AddMat3(&sum, &in.m, &in.n)
			s.SubMat3(&diff, &in.m, &in.n)
			s.ScaleMat3(&scaled, in.s, &in.m)
			s.HadamardMat3(&had, &in.m, &in.n)
			return flatten3(&sum, &diff, &scaled, &had)
		}},
		{"mat3 mul", func(s registry.Set[T], in *operands[T]) []T {
			var prod layout.Mat3[T]
			var v layout.Vec3[T]
			s.MulMat3(&prod, &in.m, &in.n)
			s.MulMat3Vec3(&v, &in.m, &in.a)
			return append(flatten3(&prod), v[:]...)
		}},
		{"mat4 linear", func(s registry.Set[T], in *operands[T]) []T {
			var sum, diff, scaled, had layout.Mat4[T]
			s.AddMat4(&sum, &in.p, &in.q)
			s.SubMat4(&diff, &in.p, &in.q)
			s.ScaleMat4(&scaled, in.s, &in.p)
			s.HadamardMat4(&had, &in.p, &in.q)
			return flatten4(&sum, &diff, &scaled, &had)
		}},
		{"mat4 mul", func(s registry.Set[T], in *operands[T]) []T {
			var prod layout.Mat4[T]
			var v layout.Vec4[T]
			s.MulMat4(&prod, &in.p, &in.q)
			s.MulMat4Vec4(&v, &in.p, &in.c)
			return append(flatten4(&prod), v[:]...)
		}},
	}
}

func randomOperands[T layout.Float](rng *rand.Rand) operands[T] {
	uniform := func() T { return T(2*rng.Float64() - 1) }
	vec3 := func() layout.Vec3[T] { return layout.Vec3[T]{uniform(), uniform(), uniform(), 0} }
	vec4 := func() layout.Vec4[T] { return layout.Vec4[T]{uniform(), uniform(), uniform(), uniform()} }

	in := operands[T]{a: vec3(), b: vec3(), c: vec4(), d: vec4(), s: uniform()}
	for i := range in.m {
		in.m[i], in.n[i] = vec3(), vec3()
	}
	for i := range in.p {
		in.p[i], in.q[i] = vec4(), vec4()
	}
	return in
}

func flatten3[T layout.Float](ms ...*layout.Mat3[T]) []T {
	var out []T
	for _, m := range ms {
		for _, col := range m {
			out = append(out, col[:]...)
		}
	}
	return out
}

func flatten4[T layout.Float](ms ...*layout.Mat4[T]) []T {
	var out []T
	for _, m := range ms {
		for _, col := range m {
			out = append(out, col[:]...)
		}
	}
	return out
}

func maxAbsDiff[T layout.Float](got, want []T) float64 {
	var worst float64
	for i := range got {
		worst = math.Max(worst, math.Abs(float64(got[i])-float64(want[i])))
	}
	return worst
}
