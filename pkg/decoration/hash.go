package decoration

import (
	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

func hashGradient(h *hashing.Hasher, g *graphics.Gradient) {
	if g == nil {
		h.Bool(false)
		return
	}
	h.Bool(true).Int(int(g.Type)).Int(int(g.TileMode))
	switch g.Type {
	case graphics.GradientTypeLinear:
		h.Float(g.Linear.Begin.X).Float(g.Linear.Begin.Y).Float(g.Linear.End.X).Float(g.Linear.End.Y)
	case graphics.GradientTypeRadial:
		h.Float(g.Radial.Center.X).Float(g.Radial.Center.Y).Float(g.Radial.Radius)
	case graphics.GradientTypeSweep:
		h.Float(g.Sweep.Center.X).Float(g.Sweep.Center.Y).Float(g.Sweep.StartAngle).Float(g.Sweep.EndAngle)
	}
	stops := g.Stops()
	h.Int(len(stops))
	for _, s := range stops {
		h.Float(s.Position).Uint32(uint32(s.Color))
	}
}

func hashShadows(h *hashing.Hasher, shadows []graphics.BoxShadow) {
	h.Int(len(shadows))
	for _, s := range shadows {
		h.Uint32(uint32(s.Color)).Float(s.Offset.X).Float(s.Offset.Y).Float(s.BlurRadius).Float(s.Spread)
	}
}

func hashImage(h *hashing.Hasher, img *DecorationImage) {
	if img == nil {
		h.Bool(false)
		return
	}
	h.Bool(true)
	if img.Provider != nil {
		h.String(img.Provider.Key())
	} else {
		h.String("")
	}
	h.Int(int(img.Fit)).Float(img.Alignment.X).Float(img.Alignment.Y).Int(int(img.Repeat)).
		Float(img.opacity()).Int(int(img.FilterQuality)).Bool(img.MatchTextDirection)
}
