// Package raster rasterizes graphics.Canvas drawing commands onto a
// gogpu/gg software context.
//
// The core decoration packages only emit canvas calls. Canvas turns those
// calls into pixels so a decoration can be rendered to a PNG file:
//
//	c := raster.NewCanvas(200, 120)
//	defer c.Close()
//	painter.Paint(c, graphics.Offset{}, cfg)
//	if err := c.SavePNG("out.png"); err != nil {
//		return err
//	}
//
// Gradient shaders map onto gg gradient brushes. Images are resampled with
// golang.org/x/image/draw and filled through a gg image pattern, so they
// respect the active clip. Mask blur is applied with a three-pass box blur
// over an offscreen coverage mask.
package raster
