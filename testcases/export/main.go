// mplexporter - export plotting figures to chart formats
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export runs every test case through the chart renderers and
// writes the results to testdata/export: plotly and vega JSON, the
// single series chart where one exists, and a preview PNG.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/renderers/binding"
	"github.com/mpld3/mplexporter/renderers/plotly"
	"github.com/mpld3/mplexporter/renderers/preview"
	"github.com/mpld3/mplexporter/renderers/vega"
	"github.com/mpld3/mplexporter/testcases"
)

const outDir = "testdata/export"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			logger := slog.Default().With("case", name)
			if err := exportCase(tc, filepath.Join(outDir, name), logger); err != nil {
				logger.Warn("export failed", "error", err)
			}
		}
	}
}

// exportCase writes all outputs of one test case. Every renderer gets a
// freshly built figure.
func exportCase(tc testcases.TestCase, base string, logger *slog.Logger) error {
	run := func(r mplexporter.Renderer) error {
		fig, err := tc.Build()
		if err != nil {
			return err
		}
		e := mplexporter.NewExporter(r)
		e.Logger = logger
		return e.Run(fig)
	}

	p := plotly.New()
	if err := run(p); err != nil {
		return err
	}
	if err := writeJSON(base+".plotly.json", p.Figure()); err != nil {
		return err
	}

	v := vega.New()
	v.Logger = logger
	if err := run(v); err != nil {
		return err
	}
	if err := writeJSON(base+".vega.json", v.Spec()); err != nil {
		return err
	}

	b := binding.New()
	b.Logger = logger
	if err := run(b); err != nil {
		return err
	}
	if b.Chart != nil {
		if err := writeJSON(base+".chart.json", b.Chart); err != nil {
			return err
		}
	}

	pr := preview.New()
	if err := run(pr); err != nil {
		return err
	}
	return writePNG(base+".png", pr)
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(fname string, r *preview.Renderer) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
