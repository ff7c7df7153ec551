package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-math3d"
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
)

type cpuReport struct {
	Architecture string `yaml:"architecture"`
	SSE2         bool   `yaml:"sse2"`
	SSE41        bool   `yaml:"sse41"`
	AVX          bool   `yaml:"avx"`
	AVX2         bool   `yaml:"avx2"`
	FMA          bool   `yaml:"fma"`
}

type kernelSetReport struct {
	Name      string `yaml:"name"`
	Level     string `yaml:"level"`
	Priority  int    `yaml:"priority"`
	Supported bool   `yaml:"supported"`
}

type batchReport struct {
	Float32Accelerated bool     `yaml:"float32_accelerated"`
	Float32Features    []string `yaml:"float32_features,omitempty"`
}

type backendReport struct {
	Compiled      string            `yaml:"compiled"`
	HostSupported bool              `yaml:"host_supported"`
	BestAvailable string            `yaml:"best_available"`
	CPU           cpuReport         `yaml:"cpu"`
	KernelSets    []kernelSetReport `yaml:"kernel_sets"`
	Batch         batchReport       `yaml:"batch"`
}

func newBackendCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Print the compiled kernel set, CPU features and registered kernel sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := collectBackend(cpu.DetectFeatures())
			opts.logger.Debug("collected backend report",
				"compiled", report.Compiled, "kernel_sets", len(report.KernelSets))
			if !report.HostSupported {
				opts.logger.Warn("compiled kernel set cannot run on this host", "kernel_set", report.Compiled)
			}
			return writeReport(cmd.OutOrStdout(), opts.format, report, report.writeText)
		},
	}
}

func collectBackend(features cpu.Features) backendReport {
	report := backendReport{
		Compiled:      math3d.Backend(),
		HostSupported: math3d.BackendSupported(),
		CPU: cpuReport{
			Architecture: features.Architecture,
			SSE2:         features.HasSSE2,
			SSE41:        features.HasSSE41,
			AVX:          features.HasAVX,
			AVX2:         features.HasAVX2,
			FMA:          features.HasFMA,
		},
	}
	if best := registry.Global.Lookup(features); best != nil {
		report.BestAvailable = best.Name
	}
	for _, e := range registry.Global.ListEntries() {
		report.KernelSets = append(report.KernelSets, kernelSetReport{
			Name:      e.Name,
			Level:     e.SIMDLevel.String(),
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.SIMDLevel),
		})
	}

	info := vek32.Info()
	report.Batch = batchReport{
		Float32Accelerated: info.Acceleration,
		Float32Features:    info.CPUFeatures,
	}
	return report
}

func (r backendReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Compiled kernel set:\t%s\n", r.Compiled)
	fmt.Fprintf(tw, "Host supported:\t%v\n", r.HostSupported)
	fmt.Fprintf(tw, "Best available:\t%s\n", r.BestAvailable)
	fmt.Fprintf(tw, "Architecture:\t%s\n", r.CPU.Architecture)
	fmt.Fprintf(tw, "CPU features:\tsse2=%v sse4.1=%v avx=%v avx2=%v fma=%v\n",
		r.CPU.SSE2, r.CPU.SSE41, r.CPU.AVX, r.CPU.AVX2, r.CPU.FMA)
	fmt.Fprintf(tw, "Batch float32:\taccelerated=%v %s\n",
		r.Batch.Float32Accelerated, strings.Join(r.Batch.Float32Features, " "))
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Kernel set\tLevel\tPriority\tSupported\n")
	fmt.Fprintf(tw, "----------\t-----\t--------\t---------\n")
	for _, k := range r.KernelSets {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\n", k.Name, k.Level, k.Priority, k.Supported)
	}
	return tw.Flush()
}

func writeReport(w io.Writer, format string, report any, text func(io.Writer) error) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}
