// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histBins = 50

func validFormat(format string) bool {
	for _, s := range []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tiff"} {
		if format == s {
			return true
		}
	}
	return false
}

// writeHist renders overlaid histograms of the lengths of all transcripts
// and of the chosen transcripts to the named file. The image format is
// determined by the file extension.
func writeHist(path string, all, chosen []int) error {
	if len(all) == 0 {
		return errors.New("no transcripts to plot")
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "transcript lengths"
	p.X.Label.Text = "length"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values(all), histBins)
	if err != nil {
		return err
	}
	h.FillColor = color.Gray{Y: 192}
	p.Add(h)
	p.Legend.Add("all", h)

	if len(chosen) != 0 {
		h, err = plotter.NewHist(values(chosen), histBins)
		if err != nil {
			return err
		}
		h.FillColor = nil
		h.Color = color.RGBA{R: 196, A: 255}
		p.Add(h)
		p.Legend.Add("chosen", h)
	}
	p.Legend.Top = true

	return p.Save(19*vg.Centimeter, 12*vg.Centimeter, path)
}

func values(lengths []int) plotter.Values {
	v := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		v[i] = float64(l)
	}
	return v
}
