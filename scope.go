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

package mplexporter

import "log/slog"

// Session wraps a renderer and pairs its open and close calls.
//
// The close call of a scope runs exactly once, also when the body returns
// an error or panics. Opening a figure inside a figure, or an axes inside
// an axes, is logged as a warning and otherwise carried out as requested.
//
// A Session is not safe for concurrent use.
type Session struct {
	Renderer Renderer
	Logger   *slog.Logger

	fig      Figure
	figProps *FigureProps
	ax       Axes
	axProps  *AxesProps
}

// NewSession returns a Session for r which logs to the default logger.
func NewSession(r Renderer) *Session {
	return &Session{Renderer: r, Logger: slog.Default()}
}

// Figure opens a figure scope, runs body and closes the scope again.
func (s *Session) Figure(fig Figure, props *FigureProps, body func() error) error {
	if s.fig != nil {
		s.logger().Warn("figure embedded in figure: something is wrong")
	}
	outer, outerProps := s.fig, s.figProps
	s.fig, s.figProps = fig, props
	s.Renderer.OpenFigure(fig, props)
	defer func() {
		s.Renderer.CloseFigure(fig)
		s.fig, s.figProps = outer, outerProps
	}()
	return body()
}

// Axes opens an axes scope, runs body and closes the scope again.
func (s *Session) Axes(ax Axes, props *AxesProps, body func() error) error {
	if s.ax != nil {
		s.logger().Warn("axes embedded in axes: something is wrong")
	}
	outer, outerProps := s.ax, s.axProps
	s.ax, s.axProps = ax, props
	s.Renderer.OpenAxes(ax, props)
	defer func() {
		s.Renderer.CloseAxes(ax)
		s.ax, s.axProps = outer, outerProps
	}()
	return body()
}

// CurrentFigure returns the figure whose scope is open, or nil.
func (s *Session) CurrentFigure() (Figure, *FigureProps) {
	return s.fig, s.figProps
}

// CurrentAxes returns the axes whose scope is open, or nil.
func (s *Session) CurrentAxes() (Axes, *AxesProps) {
	return s.ax, s.axProps
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
