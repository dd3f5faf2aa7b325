package decoration

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// ImageFit controls how an image is scaled within the painted rect.
type ImageFit int

const (
	// ImageFitScaleDown keeps the intrinsic size unless the image is too
	// large, in which case it behaves like ImageFitContain. It is the zero
	// value.
	ImageFitScaleDown ImageFit = iota
	// ImageFitContain scales the image to fit within the rect.
	ImageFitContain
	// ImageFitFill stretches the image to fill the rect.
	ImageFitFill
	// ImageFitCover scales the image to cover the rect, cropping the
	// overflow.
	ImageFitCover
	// ImageFitFitWidth matches the rect's width.
	ImageFitFitWidth
	// ImageFitFitHeight matches the rect's height.
	ImageFitFitHeight
	// ImageFitNone draws at intrinsic size, cropped to the rect.
	ImageFitNone
)

// String returns a human-readable representation of the image fit.
func (f ImageFit) String() string {
	switch f {
	case ImageFitScaleDown:
		return "scaleDown"
	case ImageFitContain:
		return "contain"
	case ImageFitFill:
		return "fill"
	case ImageFitCover:
		return "cover"
	case ImageFitFitWidth:
		return "fitWidth"
	case ImageFitFitHeight:
		return "fitHeight"
	case ImageFitNone:
		return "none"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// ImageRepeat controls tiling of an image that does not cover the rect.
type ImageRepeat int

const (
	ImageRepeatNone ImageRepeat = iota // Draw once
	ImageRepeatXY                      // Tile in both directions
	ImageRepeatX                       // Tile horizontally
	ImageRepeatY                       // Tile vertically
)

// String returns a human-readable representation of the repeat mode.
func (r ImageRepeat) String() string {
	switch r {
	case ImageRepeatNone:
		return "noRepeat"
	case ImageRepeatXY:
		return "repeat"
	case ImageRepeatX:
		return "repeatX"
	case ImageRepeatY:
		return "repeatY"
	default:
		return fmt.Sprintf("ImageRepeat(%d)", int(r))
	}
}

// DecorationImage describes an image painted inside a decoration.
//
// The zero Alignment centers the image. Opacity outside (0, 1) paints the
// image fully opaque.
type DecorationImage struct {
	Provider      ImageProvider
	Fit           ImageFit
	Alignment     graphics.Alignment
	Repeat        ImageRepeat
	Opacity       float64
	FilterQuality graphics.FilterQuality

	// MatchTextDirection mirrors Alignment horizontally for right-to-left
	// text.
	MatchTextDirection bool
}

func (d *DecorationImage) opacity() float64 {
	if d.Opacity <= 0 || d.Opacity >= 1 {
		return 1
	}
	return d.Opacity
}

// Equal reports whether two image descriptions match. Providers compare by
// Key.
func (d *DecorationImage) Equal(other *DecorationImage) bool {
	if d == nil || other == nil {
		return d == other
	}
	return providerKey(d.Provider) == providerKey(other.Provider) &&
		d.Fit == other.Fit &&
		d.Alignment == other.Alignment &&
		d.Repeat == other.Repeat &&
		d.opacity() == other.opacity() &&
		d.FilterQuality == other.FilterQuality &&
		d.MatchTextDirection == other.MatchTextDirection
}

func (d *DecorationImage) String() string {
	if d == nil {
		return "null"
	}
	return fmt.Sprintf("DecorationImage(%s, %s, %s, %s, opacity: %.2f)",
		providerKey(d.Provider), d.Fit, d.Alignment, d.Repeat, d.opacity())
}

func providerKey(p ImageProvider) string {
	if p == nil {
		return ""
	}
	return p.Key()
}

// CreatePainter returns a painter for the image. onChanged is called when
// an image that resolves asynchronously becomes available.
func (d *DecorationImage) CreatePainter(onChanged func()) *DecorationImagePainter {
	return &DecorationImagePainter{details: d, onChanged: onChanged}
}

// DecorationImagePainter paints a DecorationImage and tracks its loading.
//
// The provider is resolved on the first Paint. Paint and Dispose are
// called by the owning painter; the provider's completion may arrive on
// any goroutine.
type DecorationImagePainter struct {
	details *DecorationImage

	mu        sync.Mutex
	onChanged func()
	img       image.Image
	resolving bool
	disposed  bool
	// missed is set once a Paint has found no image; a delivery after that
	// must ask the host to repaint.
	missed bool
}

// Image returns the resolved image, or nil while it is loading.
func (p *DecorationImagePainter) Image() image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img
}

// Paint draws the image into rect, clipped to clipPath when it is non-nil.
// Nothing is drawn until the provider has delivered an image.
func (p *DecorationImagePainter) Paint(canvas graphics.Canvas, rect graphics.Rect, clipPath *graphics.Path, cfg ImageConfiguration) {
	p.resolve()

	p.mu.Lock()
	img := p.img
	if img == nil {
		p.missed = true
	}
	p.mu.Unlock()
	if img == nil || rect.IsEmpty() {
		return
	}

	if clipPath != nil {
		canvas.Save()
		canvas.ClipPath(clipPath)
	}
	alignment := p.details.Alignment
	if p.details.MatchTextDirection {
		alignment = alignment.Directional(cfg.TextDirection)
	}
	paintImage(canvas, rect, img, p.details, alignment)
	if clipPath != nil {
		canvas.Restore()
	}
}

// Dispose stops delivering change notifications. A load still in flight
// is discarded when it completes.
func (p *DecorationImagePainter) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disposed = true
	p.onChanged = nil
	p.img = nil
}

func (p *DecorationImagePainter) resolve() {
	p.mu.Lock()
	start := !p.resolving && !p.disposed && p.details.Provider != nil
	p.resolving = true
	p.mu.Unlock()
	if !start {
		return
	}

	p.details.Provider.Resolve(p.handleImage)
}

// handleImage stores a delivered image. A delivery that lands before Paint
// reads the image is picked up by that Paint, so only deliveries after a
// Paint has found nothing notify.
func (p *DecorationImagePainter) handleImage(img image.Image, err error) {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	if err != nil {
		p.mu.Unlock()
		var e *errors.Error
		if !errors.As(err, &e) {
			e = errors.Wrap("decoration.DecorationImagePainter", errors.KindImage, err)
		}
		errors.Report(e)
		return
	}
	p.img = img
	onChanged := p.onChanged
	notify := p.missed
	p.mu.Unlock()

	if notify && onChanged != nil {
		onChanged()
	}
}

// fittedSizes is the portion of the image to draw and the size to draw it
// at.
type fittedSizes struct {
	source      graphics.Size
	destination graphics.Size
}

func applyImageFit(fit ImageFit, input, output graphics.Size) fittedSizes {
	if input.Height <= 0 || input.Width <= 0 || output.Height <= 0 || output.Width <= 0 {
		return fittedSizes{}
	}
	outputWider := output.Width/output.Height > input.Width/input.Height
	switch fit {
	case ImageFitFill:
		return fittedSizes{source: input, destination: output}
	case ImageFitContain:
		if outputWider {
			return fittedSizes{source: input, destination: graphics.Size{Width: input.Width * output.Height / input.Height, Height: output.Height}}
		}
		return fittedSizes{source: input, destination: graphics.Size{Width: output.Width, Height: input.Height * output.Width / input.Width}}
	case ImageFitCover:
		if outputWider {
			return fittedSizes{source: graphics.Size{Width: input.Width, Height: input.Width * output.Height / output.Width}, destination: output}
		}
		return fittedSizes{source: graphics.Size{Width: input.Height * output.Width / output.Height, Height: input.Height}, destination: output}
	case ImageFitFitWidth:
		if outputWider {
			return fittedSizes{source: graphics.Size{Width: input.Width, Height: input.Width * output.Height / output.Width}, destination: output}
		}
		return fittedSizes{source: input, destination: graphics.Size{Width: output.Width, Height: input.Height * output.Width / input.Width}}
	case ImageFitFitHeight:
		if outputWider {
			return fittedSizes{source: input, destination: graphics.Size{Width: input.Width * output.Height / input.Height, Height: output.Height}}
		}
		return fittedSizes{source: graphics.Size{Width: input.Height * output.Width / output.Height, Height: input.Height}, destination: output}
	case ImageFitNone:
		s := graphics.Size{Width: math.Min(input.Width, output.Width), Height: math.Min(input.Height, output.Height)}
		return fittedSizes{source: s, destination: s}
	default:
		aspect := input.Width / input.Height
		dest := input
		if dest.Height > output.Height {
			dest = graphics.Size{Width: output.Height * aspect, Height: output.Height}
		}
		if dest.Width > output.Width {
			dest = graphics.Size{Width: output.Width, Height: output.Width / aspect}
		}
		return fittedSizes{source: input, destination: dest}
	}
}

// paintImage draws img into rect according to details.
func paintImage(canvas graphics.Canvas, rect graphics.Rect, img image.Image, details *DecorationImage, alignment graphics.Alignment) {
	bounds := img.Bounds()
	input := graphics.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
	fitted := applyImageFit(details.Fit, input, rect.Size())
	if fitted.source.IsEmpty() || fitted.destination.IsEmpty() {
		return
	}

	destPos := alignment.WithinRect(rect, fitted.destination)
	destRect := graphics.RectFromOffsetSize(destPos, fitted.destination)
	srcPos := alignment.WithinRect(graphics.RectFromLTWH(float64(bounds.Min.X), float64(bounds.Min.Y), input.Width, input.Height), fitted.source)
	srcRect := graphics.RectFromOffsetSize(srcPos, fitted.source)

	opacity := details.opacity()
	if opacity < 1 {
		canvas.SaveLayerAlpha(rect, opacity)
	}
	if details.Repeat == ImageRepeatNone {
		canvas.DrawImageRect(img, srcRect, destRect, details.FilterQuality)
	} else {
		canvas.Save()
		canvas.ClipRect(rect)
		for _, tile := range imageTileRects(rect, destRect, details.Repeat) {
			canvas.DrawImageRect(img, srcRect, tile, details.FilterQuality)
		}
		canvas.Restore()
	}
	if opacity < 1 {
		canvas.Restore()
	}
}

// imageTileRects returns copies of tile stepped across output along the
// repeat axes.
func imageTileRects(output, tile graphics.Rect, repeat ImageRepeat) []graphics.Rect {
	var startX, stopX, startY, stopY int
	strideX, strideY := tile.Width(), tile.Height()
	if repeat == ImageRepeatXY || repeat == ImageRepeatX {
		startX = int(math.Floor((output.Left - tile.Left) / strideX))
		stopX = int(math.Ceil((output.Right - tile.Right) / strideX))
	}
	if repeat == ImageRepeatXY || repeat == ImageRepeatY {
		startY = int(math.Floor((output.Top - tile.Top) / strideY))
		stopY = int(math.Ceil((output.Bottom - tile.Bottom) / strideY))
	}
	rects := make([]graphics.Rect, 0, (stopX-startX+1)*(stopY-startY+1))
	for i := startX; i <= stopX; i++ {
		for j := startY; j <= stopY; j++ {
			rects = append(rects, tile.Translate(float64(i)*strideX, float64(j)*strideY))
		}
	}
	return rects
}
