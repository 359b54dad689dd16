// Package render writes points, matrices and costs as aligned text tables.
//
// Rows of a matrix are labelled C1..Ck (centroids) and columns P1..Pn (points),
// matching the indices used throughout cmeans.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/hupe1980/cmeans/cost"
	"github.com/hupe1980/cmeans/model"
)

// Precision is the number of decimals printed for every value.
const Precision = 4

func newWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// Points writes one row per point with its label, x and y.
// prefix labels the rows, e.g. "P" or "C".
func Points(w io.Writer, title, prefix string, points model.Points) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	tw := newWriter(w)
	fmt.Fprintln(tw, "\tx\ty\t")
	for i, p := range points {
		fmt.Fprintf(tw, "%s%d\t%s\t%s\t\n", prefix, i+1, format(p.X), format(p.Y))
	}
	return tw.Flush()
}

// Matrix writes m with centroid rows and point columns. An empty matrix
// writes only the title and "(empty)".
func Matrix(w io.Writer, title string, m model.Matrix) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if m.IsEmpty() {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	tw := newWriter(w)
	for j := 0; j < m.Cols(); j++ {
		fmt.Fprintf(tw, "\tP%d", j+1)
	}
	fmt.Fprintln(tw, "\t")

	for i, row := range m {
		fmt.Fprintf(tw, "C%d", i+1)
		for _, v := range row {
			fmt.Fprintf(tw, "\t%s", format(v))
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

// Costs writes the per-centroid costs followed by their total.
func Costs(w io.Writer, costs cost.Vector, total float64) error {
	tw := newWriter(w)
	fmt.Fprintln(tw, "\tcost\t")
	for i, c := range costs {
		fmt.Fprintf(tw, "C%d\t%s\t\n", i+1, format(c))
	}
	fmt.Fprintf(tw, "total\t%s\t\n", format(total))
	return tw.Flush()
}
