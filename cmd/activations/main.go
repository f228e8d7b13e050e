// Package main provides the activations CLI.
//
// Usage:
//
//	activations version
//	activations list
//	activations apply -name Gelu -- -1.5 0 2
//	activations apply -name ThresholdedLinearUnit -threshold 0.5 -- -1 1
//
// Use "--" before the values so negative numbers are not read as flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/activations/backend/cpu"
	"github.com/born-ml/activations/nn"
	"github.com/born-ml/activations/tensor"
)

const version = "v0.1.0"

const tluName = "ThresholdedLinearUnit"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "activations %s\n", version)
	case "list":
		for _, name := range nn.Names() {
			fmt.Fprintln(stdout, name)
		}
	case "apply":
		err = runApply(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "activations %s - elementwise activation layers\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  list       List activation names")
	fmt.Fprintln(w, "  apply      Apply an activation: apply -name NAME [-backend cpu|webgpu] [-threshold T] -- V1 V2 ...")
}

func runApply(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "Activation name (see 'activations list')")
	backendName := fs.String("backend", "cpu", "Compute backend: cpu or webgpu")
	threshold := fs.Float64("threshold", 0, "Weight of "+tluName+" after initialization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("apply: -name is required")
	}
	thresholdSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			thresholdSet = true
		}
	})
	if thresholdSet && *name != tluName {
		return fmt.Errorf("apply: -threshold only applies to %s", tluName)
	}

	values, err := parseValues(fs.Args())
	if err != nil {
		return err
	}

	var out []float32
	switch *backendName {
	case "cpu":
		out, err = apply(cpu.New(), *name, float32(*threshold), values)
	case "webgpu":
		out, err = applyWebGPU(*name, float32(*threshold), values)
	default:
		err = fmt.Errorf("apply: unknown backend %q", *backendName)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, formatValues(out))
	return nil
}

// apply runs the named activation over values as a rank-1 tensor.
func apply[B tensor.Backend](backend B, name string, threshold float32, values []float32) ([]float32, error) {
	layer, err := nn.NewActivation(name, backend)
	if err != nil {
		return nil, err
	}

	x, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	if err != nil {
		return nil, err
	}

	if tlu, ok := layer.(*nn.ThresholdedLinearUnit[B]); ok {
		if err := tlu.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: x.DType()}); err != nil {
			return nil, err
		}
		tlu.Weight().Tensor().Data()[0] = threshold
	}

	return layer.Forward(x).Data(), nil
}

func parseValues(args []string) ([]float32, error) {
	if len(args) == 0 {
		return nil, errors.New("apply: no input values")
	}
	values := make([]float32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("apply: invalid value %q", arg)
		}
		values[i] = float32(v)
	}
	return values, nil
}

func formatValues(values []float32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, " ")
}
