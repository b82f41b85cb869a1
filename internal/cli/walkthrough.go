package cli

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hyperjump/vecplot/pkg/vector"
)

// WriteWalkthrough prints a step-by-step tour of construction, magnitude,
// normalization, and the zero-vector failure, using v as the example vector.
func WriteWalkthrough(w io.Writer, v vector.Vector2D) error {
	var b bytes.Buffer

	fmt.Fprintf(&b, "\n=== Vector2D walkthrough ===\n\n")

	fmt.Fprintln(&b, "1. Construct:")
	fmt.Fprintf(&b, "   v1 = %s\n", v)

	fmt.Fprintln(&b, "\n2. Magnitude:")
	mag := v.Magnitude()
	sq := v.X*v.X + v.Y*v.Y
	fmt.Fprintf(&b, "   |v1| = %s\n", formatFloat(mag))
	fmt.Fprintf(&b, "   check: sqrt(%s² + %s²) = sqrt(%s) = %s\n",
		formatFloat(v.X), formatFloat(v.Y), formatFloat(sq), formatFloat(mag))

	fmt.Fprintln(&b, "\n3. Normalize:")
	if n, err := v.Normalize(); err != nil {
		fmt.Fprintf(&b, "   v1 cannot be normalized: %v\n", err)
	} else {
		fmt.Fprintf(&b, "   v1 normalized = %s\n", n)
		fmt.Fprintf(&b, "   |normalized| = %.6f\n", n.Magnitude())
	}

	fmt.Fprintln(&b, "\n4. Zero vector:")
	zero := vector.New(0, 0)
	fmt.Fprintf(&b, "   zero = %s\n", zero)
	fmt.Fprintf(&b, "   |zero| = %s\n", formatFloat(zero.Magnitude()))
	fmt.Fprintln(&b, "   normalizing the zero vector fails:")
	if _, err := zero.Normalize(); err != nil {
		fmt.Fprintf(&b, "   caught: %v\n", err)
	}

	fmt.Fprintf(&b, "\n=== done ===\n")

	_, err := w.Write(b.Bytes())
	return err
}

// formatFloat prints the shortest exact form of f, keeping a ".0" on whole numbers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
