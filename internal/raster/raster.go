// Package raster turns images and captions into freshly initialised smoke
// grids. Every entry point builds a new grid; nothing here touches a grid a
// World already owns, so ingestion can run off the simulation goroutine.
package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"smokegate/internal/sims/smoke"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("raster: empty image")
	// ErrEmptyCaption is returned when text-only ingestion gets no text.
	ErrEmptyCaption = errors.New("raster: empty caption")
	// ErrContainerTooSmall is returned when the viewport cannot hold a grid.
	ErrContainerTooSmall = errors.New("raster: container too small")
)

// Options controls how sources are laid out and converted into cells.
type Options struct {
	ViewWidth     int
	ViewHeight    int
	MinResolution int

	Ambient float64
	Hot     float64

	// Threshold is the mean channel brightness above which a text pixel
	// becomes a solid emitter.
	Threshold float64
	// TextWidth is the fraction of the container width a caption spans in
	// text-only ingestion.
	TextWidth float64
}

// DefaultOptions returns the standard ingestion settings for a viewport.
func DefaultOptions(viewW, viewH int) Options {
	return Options{
		ViewWidth:     viewW,
		ViewHeight:    viewH,
		MinResolution: 120,
		Ambient:       0,
		Hot:           100,
		Threshold:     50,
		TextWidth:     0.8,
	}
}

// Layout is the cell geometry derived from a container.
type Layout struct {
	CellSize int
	Cols     int
	Rows     int
}

// LayoutFor derives the grid geometry for the configured container.
func (o Options) LayoutFor() (Layout, error) {
	if o.ViewWidth < smoke.MinGridSize || o.ViewHeight < smoke.MinGridSize {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrContainerTooSmall, o.ViewWidth, o.ViewHeight)
	}
	cell, cols, rows := smoke.LayoutFor(o.ViewWidth, o.ViewHeight, o.MinResolution)
	return Layout{CellSize: cell, Cols: cols, Rows: rows}, nil
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d@%dpx", l.Cols, l.Rows, l.CellSize)
}

// NewGrid allocates a blank grid with this layout.
func (l Layout) NewGrid(ambient float64) *smoke.Grid {
	return smoke.NewGrid(l.Cols, l.Rows, l.CellSize, ambient)
}

// Blank returns an empty grid sized for the container.
func Blank(opts Options) (*smoke.Grid, error) {
	l, err := opts.LayoutFor()
	if err != nil {
		return nil, err
	}
	return l.NewGrid(opts.Ambient), nil
}

// Source names what to ingest. Image may be a file path or an http(s) URL;
// when Data is set it holds the encoded image and Image is only a label.
// With TextOnly set, or when there is no image, the caption alone is
// rendered as solid emitters.
type Source struct {
	Image    string
	Data     []byte
	Caption  string
	TextOnly bool
}

func (s Source) hasImage() bool { return s.Image != "" || len(s.Data) > 0 }

// Empty reports whether the source names nothing at all.
func (s Source) Empty() bool {
	return !s.hasImage() && strings.TrimSpace(s.Caption) == ""
}

func (s Source) String() string {
	switch {
	case s.TextOnly || !s.hasImage():
		return fmt.Sprintf("text %q", s.Caption)
	case s.Caption != "":
		return fmt.Sprintf("%s (%q)", s.Image, s.Caption)
	default:
		return s.Image
	}
}

// Build ingests src into a new grid. An empty source yields a blank grid.
func Build(ctx context.Context, src Source, opts Options) (*smoke.Grid, error) {
	switch {
	case src.Empty():
		return Blank(opts)
	case src.TextOnly || !src.hasImage():
		return FromText(src.Caption, opts)
	case len(src.Data) > 0:
		img, err := Decode(bytes.NewReader(src.Data), src.Image)
		if err != nil {
			return nil, err
		}
		return FromImage(img, src.Caption, opts)
	default:
		img, err := LoadImage(ctx, src.Image)
		if err != nil {
			return nil, err
		}
		return FromImage(img, src.Caption, opts)
	}
}

// Result is the outcome of an asynchronous Build.
type Result struct {
	Source Source
	Grid   *smoke.Grid
	Err    error
}

// Start runs Build on its own goroutine. The returned channel receives
// exactly one Result and is then closed.
func Start(ctx context.Context, src Source, opts Options) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		g, err := Build(ctx, src, opts)
		if err != nil {
			g = nil
		}
		out <- Result{Source: src, Grid: g, Err: err}
	}()
	return out
}
