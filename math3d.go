package math3d

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Float is the set of scalar types the math3d types are defined over.
type Float interface {
	float32 | float64
}

// Eps is the absolute tolerance used by every Equal method.
const Eps = layout.Eps

// ErrDimensionMismatch is returned when a slice does not hold exactly the
// number of elements a value is built from.
var ErrDimensionMismatch = errors.New("math3d: dimension mismatch")

// Backend returns the name of the kernel set compiled into this build:
// "scalar", "sse" or "avx".
func Backend() string {
	return kernel.Name()
}

// BackendSupported reports whether the host CPU can execute the kernel set
// compiled into this build.
func BackendSupported() bool {
	return kernel.Supported()
}

func checkLen(kind string, want, got int) error {
	if got != want {
		return fmt.Errorf("%w: %s needs %d elements, got %d", ErrDimensionMismatch, kind, want, got)
	}
	return nil
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// suffix returns the precision suffix used in type names: f or d.
func suffix[T Float]() string {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return "f"
	}
	return "d"
}

func formatScalar[T Float](x T) string {
	var zero T
	bits := 64
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}
	return strconv.FormatFloat(float64(x), 'g', -1, bits)
}

// formatTuple renders name<suffix>(e0, e1, ...).
func formatTuple[T Float](name string, elems ...T) string {
	return name + suffix[T]() + formatElems(elems...)
}

func formatElems[T Float](elems ...T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatScalar(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
