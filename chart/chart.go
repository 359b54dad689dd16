// Package chart draws points and centroids as a scatter chart.
//
// Points are coloured by the centroid that holds their largest membership;
// centroids are drawn as crosses in the colour of their cluster.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/hupe1980/cmeans/membership"
	"github.com/hupe1980/cmeans/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the default edge length of a saved chart.
const Size = 6 * vg.Inch

var unassigned = color.Gray{Y: 128}

// Scatter builds a chart of points and centroids. mm is the membership matrix
// of the points against the centroids; an empty mm draws all points grey.
// Centroids with a NaN coordinate are skipped.
func Scatter(title string, points, centroids model.Points, mm model.Matrix) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	groups := make(map[int]plotter.XYs)
	labels := membership.Labels(mm)
	for j, pt := range points {
		label := -1
		if labels != nil {
			label = labels[j]
		}
		groups[label] = append(groups[label], plotter.XY{X: pt.X, Y: pt.Y})
	}

	if xys, ok := groups[-1]; ok {
		if err := addPoints(p, "points", xys, unassigned); err != nil {
			return nil, err
		}
	}
	for i := range centroids {
		xys, ok := groups[i]
		if !ok {
			continue
		}
		if err := addPoints(p, fmt.Sprintf("cluster %d", i+1), xys, plotutil.Color(i)); err != nil {
			return nil, err
		}
	}

	for i, c := range centroids {
		if c.IsNaN() {
			continue
		}
		s, err := plotter.NewScatter(plotter.XYs{{X: c.X, Y: c.Y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("C%d", i+1), s)
	}

	return p, nil
}

func addPoints(p *plot.Plot, name string, xys plotter.XYs, c color.Color) error {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Color = c
	p.Add(s)
	p.Legend.Add(name, s)
	return nil
}

// Save writes p to path; the format follows the file extension (png, svg, pdf, ...).
func Save(p *plot.Plot, path string) error {
	return p.Save(Size, Size, path)
}

// Write encodes p in the given format ("png", "svg", ...) to w.
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
