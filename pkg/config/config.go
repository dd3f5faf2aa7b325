// Package config reads decoration descriptions from YAML files.
//
// A file names a schema version, an optional fill (color or gradient), an
// optional image, shadows, and either a shape border or a legacy box:
//
//	version: 1.0.0
//	color: "#FF2196F3"
//	shadows:
//	  - color: "#66000000"
//	    offset: [0, 4]
//	    blur_radius: 8
//	shape:
//	  kind: rounded_rectangle
//	  radius: 12
//	  side: {color: "#FF0D47A1", width: 2}
//
// Files are validated before conversion; every failure is an
// errors.KindConfig error.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/decoration"
	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError is a YAML syntax or decoding failure.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads, parses and validates the file at path. Relative image paths
// resolve against the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, err)
	}
	f, err := parse(data, path, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse parses and validates data. Relative image paths resolve against
// baseDir.
func Parse(data []byte, baseDir string) (*File, error) {
	return parse(data, "<config>", baseDir)
}

func parse(data []byte, name, baseDir string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap("config.Parse", errors.KindConfig,
			&ParseError{Path: name, Line: extractLine(err), Err: err})
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	f.baseDir = baseDir
	return &f, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Decoration builds the decoration the file describes: a
// *decoration.ShapeDecoration for a shape, a *decoration.BoxDecoration for
// a box.
func (f *File) Decoration() (decoration.Decoration, error) {
	const op = "config.File.Decoration"

	color, err := parseOptionalColor(f.Color)
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	gradient, err := f.Gradient.build()
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	shadows, err := buildShadows(f.Shadows)
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	img := f.Image.build(f.baseDir)

	if f.Box != nil {
		box, err := f.Box.build()
		if err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, err)
		}
		box.Color, box.Gradient, box.Image, box.Shadows = color, gradient, img, shadows
		if _, err := decoration.ShapeDecorationFromBoxDecoration(box); err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, err)
		}
		return box, nil
	}

	shape, err := f.Shape.Border()
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	d, err := decoration.NewShapeDecoration(decoration.ShapeDecorationConfig{
		Color:    color,
		Gradient: gradient,
		Image:    img,
		Shadows:  shadows,
		Shape:    shape,
	})
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	return d, nil
}

// Border builds the shape border, wrapping it in the Around borders from
// the inside out.
func (s *Shape) Border() (borders.ShapeBorder, error) {
	side, err := s.Side.build()
	if err != nil {
		return nil, fmt.Errorf("shape.side: %w", err)
	}
	var out borders.ShapeBorder
	switch s.Kind {
	case KindCircle:
		out = borders.CircleBorder{Side: side}
	case KindRoundedRectangle:
		out = borders.RoundedRectangleBorder{Side: side, BorderRadius: borders.BorderRadiusCircular(s.Radius)}
	case KindRectangle:
		if s.Sides == nil {
			out = borders.BorderAll(side)
			break
		}
		b, err := s.Sides.build()
		if err != nil {
			return nil, fmt.Errorf("shape.sides: %w", err)
		}
		out = b
	default:
		return nil, fmt.Errorf("shape.kind: unknown kind %q", s.Kind)
	}
	for i := range s.Around {
		outer, err := s.Around[i].Border()
		if err != nil {
			return nil, fmt.Errorf("around[%d]: %w", i, err)
		}
		out = borders.Add(out, outer)
	}
	return out, nil
}

func (b *Box) build() (*decoration.BoxDecoration, error) {
	box := &decoration.BoxDecoration{}
	if b.Shape == "circle" {
		box.Shape = decoration.BoxShapeCircle
	}
	switch {
	case b.Border != nil:
		border, err := b.Border.build()
		if err != nil {
			return nil, fmt.Errorf("box.border: %w", err)
		}
		box.Border = &border
	case b.Side != nil:
		side, err := b.Side.build()
		if err != nil {
			return nil, fmt.Errorf("box.side: %w", err)
		}
		border := borders.BorderAll(side)
		box.Border = &border
	}
	if b.Radius > 0 {
		radius := borders.BorderRadiusCircular(b.Radius)
		box.BorderRadius = &radius
	}
	return box, nil
}

func (s Side) build() (borders.BorderSide, error) {
	color, err := parseOptionalColor(s.Color)
	if err != nil {
		return borders.BorderSide{}, err
	}
	side := borders.BorderSide{Color: color, Width: s.Width}
	if s.Style == "none" {
		side.Style = borders.BorderStyleNone
	}
	return side, nil
}

func (s *Sides) build() (borders.Border, error) {
	var b borders.Border
	for _, edge := range []struct {
		name string
		src  Side
		dst  *borders.BorderSide
	}{
		{"top", s.Top, &b.Top},
		{"right", s.Right, &b.Right},
		{"bottom", s.Bottom, &b.Bottom},
		{"left", s.Left, &b.Left},
	} {
		side, err := edge.src.build()
		if err != nil {
			return borders.Border{}, fmt.Errorf("%s: %w", edge.name, err)
		}
		*edge.dst = side
	}
	return b, nil
}

func (g *Gradient) build() (*graphics.Gradient, error) {
	if g == nil {
		return nil, nil
	}
	colors := make([]graphics.Color, len(g.Colors))
	for i, s := range g.Colors {
		c, err := graphics.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("gradient.colors[%d]: %w", i, err)
		}
		colors[i] = c
	}
	stops := graphics.EvenStops(colors...)
	if len(g.Stops) > 0 {
		for i := range stops {
			stops[i].Position = g.Stops[i]
		}
	}

	var out *graphics.Gradient
	switch g.Type {
	case "linear":
		out = graphics.NewLinearGradient(
			g.Begin.Or(graphics.AlignmentCenterLeft), g.End.Or(graphics.AlignmentCenterRight), stops)
	case "radial":
		radius := g.Radius
		if radius == 0 {
			radius = 0.5
		}
		out = graphics.NewRadialGradient(g.Center.Or(graphics.AlignmentCenter), radius, stops)
	case "sweep":
		end := g.EndAngle
		if end == 0 && g.StartAngle == 0 {
			end = 2 * math.Pi
		}
		out = graphics.NewSweepGradient(g.Center.Or(graphics.AlignmentCenter), g.StartAngle, end, stops)
	default:
		return nil, fmt.Errorf("gradient.type: unknown type %q", g.Type)
	}
	switch g.TileMode {
	case "repeated":
		out.TileMode = graphics.TileModeRepeated
	case "mirror":
		out.TileMode = graphics.TileModeMirror
	}
	return out, nil
}

var (
	imageFits = map[string]decoration.ImageFit{
		"scaleDown": decoration.ImageFitScaleDown,
		"contain":   decoration.ImageFitContain,
		"fill":      decoration.ImageFitFill,
		"cover":     decoration.ImageFitCover,
		"fitWidth":  decoration.ImageFitFitWidth,
		"fitHeight": decoration.ImageFitFitHeight,
		"none":      decoration.ImageFitNone,
	}
	imageRepeats = map[string]decoration.ImageRepeat{
		"noRepeat": decoration.ImageRepeatNone,
		"repeat":   decoration.ImageRepeatXY,
		"repeatX":  decoration.ImageRepeatX,
		"repeatY":  decoration.ImageRepeatY,
	}
	filterQualities = map[string]graphics.FilterQuality{
		"none":   graphics.FilterQualityNone,
		"low":    graphics.FilterQualityLow,
		"medium": graphics.FilterQualityMedium,
		"high":   graphics.FilterQualityHigh,
	}
)

func (i *Image) build(baseDir string) *decoration.DecorationImage {
	if i == nil {
		return nil
	}
	path := i.Path
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	quality, ok := filterQualities[i.FilterQuality]
	if !ok {
		quality = graphics.FilterQualityLow
	}
	return &decoration.DecorationImage{
		Provider:           decoration.FileImage{Path: path},
		Fit:                imageFits[i.Fit],
		Alignment:          i.Alignment.Or(graphics.AlignmentCenter),
		Repeat:             imageRepeats[i.Repeat],
		Opacity:            i.Opacity,
		FilterQuality:      quality,
		MatchTextDirection: i.MatchTextDirection,
	}
}

func buildShadows(in []Shadow) ([]graphics.BoxShadow, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]graphics.BoxShadow, len(in))
	for i, s := range in {
		c, err := graphics.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("shadows[%d].color: %w", i, err)
		}
		if s.Elevation > 0 {
			out[i] = graphics.BoxShadowElevation(s.Elevation, c)
			continue
		}
		out[i] = graphics.BoxShadow{Color: c, BlurRadius: s.BlurRadius, Spread: s.Spread}
		if len(s.Offset) == 2 {
			out[i].Offset = graphics.Offset{X: s.Offset[0], Y: s.Offset[1]}
		}
	}
	return out, nil
}

func parseOptionalColor(s string) (graphics.Color, error) {
	if s == "" {
		return 0, nil
	}
	return graphics.ParseColor(s)
}
