package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/shapefill/pkg/graphics"
)

// File is a decoration description as written in YAML.
//
// Exactly one of Shape and Box must be set. Color, Gradient, Image and
// Shadows apply to either.
type File struct {
	Version  string    `yaml:"version" validate:"required,schema_version"`
	Color    string    `yaml:"color,omitempty" validate:"omitempty,hexcolor8"`
	Gradient *Gradient `yaml:"gradient,omitempty" validate:"omitempty"`
	Image    *Image    `yaml:"image,omitempty" validate:"omitempty"`
	Shadows  []Shadow  `yaml:"shadows,omitempty" validate:"omitempty,dive"`
	Shape    *Shape    `yaml:"shape,omitempty" validate:"required_without=Box,excluded_with=Box"`
	Box      *Box      `yaml:"box,omitempty" validate:"omitempty"`

	// baseDir resolves relative image paths.
	baseDir string
}

// Gradient describes a linear, radial or sweep gradient. Stops, when given,
// pairs one position with each color; otherwise colors are spread evenly.
type Gradient struct {
	Type       string    `yaml:"type" validate:"required,oneof=linear radial sweep"`
	Colors     []string  `yaml:"colors" validate:"required,min=2,dive,hexcolor8"`
	Stops      []float64 `yaml:"stops,omitempty" validate:"omitempty,dive,min=0,max=1"`
	Begin      Alignment `yaml:"begin,omitempty"`
	End        Alignment `yaml:"end,omitempty"`
	Center     Alignment `yaml:"center,omitempty"`
	Radius     float64   `yaml:"radius,omitempty" validate:"omitempty,gt=0"`
	StartAngle float64   `yaml:"start_angle,omitempty"`
	EndAngle   float64   `yaml:"end_angle,omitempty"`
	TileMode   string    `yaml:"tile_mode,omitempty" validate:"omitempty,oneof=clamp repeated mirror"`
}

// Image describes a decoration image loaded from a file.
type Image struct {
	Path               string    `yaml:"path" validate:"required"`
	Fit                string    `yaml:"fit,omitempty" validate:"omitempty,oneof=scaleDown contain fill cover fitWidth fitHeight none"`
	Alignment          Alignment `yaml:"alignment,omitempty"`
	Repeat             string    `yaml:"repeat,omitempty" validate:"omitempty,oneof=noRepeat repeat repeatX repeatY"`
	Opacity            float64   `yaml:"opacity,omitempty" validate:"omitempty,gt=0,lte=1"`
	FilterQuality      string    `yaml:"filter_quality,omitempty" validate:"omitempty,oneof=none low medium high"`
	MatchTextDirection bool      `yaml:"match_text_direction,omitempty"`
}

// Shadow is one drop shadow.
//
// A non-zero Elevation selects a preset offset, blur and spread; the explicit
// geometry fields are then ignored.
type Shadow struct {
	Color      string    `yaml:"color" validate:"required,hexcolor8"`
	Offset     []float64 `yaml:"offset,omitempty" validate:"omitempty,len=2"`
	BlurRadius float64   `yaml:"blur_radius,omitempty" validate:"gte=0"`
	Spread     float64   `yaml:"spread,omitempty"`
	Elevation  int       `yaml:"elevation,omitempty" validate:"omitempty,min=1,max=5"`
}

// Side is one border side.
type Side struct {
	Color string  `yaml:"color,omitempty" validate:"omitempty,hexcolor8"`
	Width float64 `yaml:"width,omitempty" validate:"gte=0"`
	Style string  `yaml:"style,omitempty" validate:"omitempty,oneof=solid none"`
}

// Sides gives each edge of a rectangle its own side.
type Sides struct {
	Top    Side `yaml:"top,omitempty"`
	Right  Side `yaml:"right,omitempty"`
	Bottom Side `yaml:"bottom,omitempty"`
	Left   Side `yaml:"left,omitempty"`
}

// Shape describes a shape border. Rectangle uses Sides when set and Side
// otherwise. Around stacks further borders outside this one.
type Shape struct {
	Kind   string  `yaml:"kind" validate:"required,shape_kind"`
	Side   Side    `yaml:"side,omitempty"`
	Sides  *Sides  `yaml:"sides,omitempty" validate:"omitempty"`
	Radius float64 `yaml:"radius,omitempty" validate:"gte=0"`
	Around []Shape `yaml:"around,omitempty" validate:"omitempty,dive"`
}

// Box describes the legacy box model: a rectangle or circle with an
// optional border and corner radius.
type Box struct {
	Shape  string  `yaml:"shape,omitempty" validate:"omitempty,oneof=rectangle circle"`
	Border *Sides  `yaml:"border,omitempty" validate:"omitempty"`
	Side   *Side   `yaml:"side,omitempty" validate:"omitempty,excluded_with=Border"`
	Radius float64 `yaml:"radius,omitempty" validate:"gte=0"`
}

// Alignment is written either as a name such as "topLeft" or as an [x, y]
// pair in the -1..1 alignment space.
type Alignment struct {
	graphics.Alignment
	set bool
}

var namedAlignments = map[string]graphics.Alignment{
	"topLeft":      graphics.AlignmentTopLeft,
	"topCenter":    graphics.AlignmentTopCenter,
	"topRight":     graphics.AlignmentTopRight,
	"centerLeft":   graphics.AlignmentCenterLeft,
	"center":       graphics.AlignmentCenter,
	"centerRight":  graphics.AlignmentCenterRight,
	"bottomLeft":   graphics.AlignmentBottomLeft,
	"bottomCenter": graphics.AlignmentBottomCenter,
	"bottomRight":  graphics.AlignmentBottomRight,
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		named, ok := namedAlignments[strings.TrimSpace(value.Value)]
		if !ok {
			return fmt.Errorf("line %d: unknown alignment %q", value.Line, value.Value)
		}
		a.Alignment, a.set = named, true
		return nil
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: alignment needs two values, got %d", value.Line, len(xy))
		}
		a.Alignment, a.set = graphics.Alignment{X: xy[0], Y: xy[1]}, true
		return nil
	default:
		return fmt.Errorf("line %d: alignment must be a name or an [x, y] pair", value.Line)
	}
}

// Or returns the alignment, or fallback when it was not written.
func (a Alignment) Or(fallback graphics.Alignment) graphics.Alignment {
	if !a.set {
		return fallback
	}
	return a.Alignment
}
