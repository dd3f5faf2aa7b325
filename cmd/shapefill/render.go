package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/shapefill/pkg/config"
	"github.com/go-drift/shapefill/pkg/decoration"
	"github.com/go-drift/shapefill/pkg/graphics"
	"github.com/go-drift/shapefill/pkg/layout"
	"github.com/go-drift/shapefill/pkg/raster"
)

type renderOptions struct {
	configPath string
	width      int
	height     int
	rtl        bool
	output     string
	imageWait  time.Duration
}

func (o *renderOptions) size() graphics.Size {
	return graphics.Size{Width: float64(o.width), Height: float64(o.height)}
}

func (o *renderOptions) direction() graphics.TextDirection {
	if o.rtl {
		return graphics.TextDirectionRTL
	}
	return graphics.TextDirectionLTR
}

func addSizeFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().IntVarP(&opts.width, "width", "W", 200, "Output width in pixels")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 120, "Output height in pixels")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "Paint with right-to-left text direction")
	cmd.Flags().DurationVar(&opts.imageWait, "image-wait", 5*time.Second, "How long to wait for decoration images to load")
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a decoration to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Decoration YAML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "out.png", "Output PNG path")
	addSizeFlags(cmd, opts)
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runRender(ctx context.Context, a *app, opts *renderOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("render: size must be positive, got %dx%d", opts.width, opts.height)
	}
	f, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	d, err := f.Decoration()
	if err != nil {
		return err
	}

	box := layout.NewRenderDecoratedBox(d, opts.direction())
	defer box.Dispose()
	canvas, err := renderBox(ctx, a, box, opts)
	if err != nil {
		return err
	}
	defer canvas.Close()

	if err := canvas.SavePNG(opts.output); err != nil {
		return err
	}
	a.log.Info().
		Str("config", opts.configPath).
		Str("output", opts.output).
		Int("width", opts.width).
		Int("height", opts.height).
		Msg("rendered decoration")
	return nil
}

// renderBox paints box at the requested size. When the decoration has an
// image it waits for the image to load and paints again; a load failure or
// timeout keeps the first paint.
func renderBox(ctx context.Context, a *app, box *layout.RenderDecoratedBox, opts *renderOptions) (*raster.Canvas, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	box.SetSize(opts.size())
	owner := layout.NewPipelineOwner()
	box.Attach(owner)
	box.MarkNeedsPaint()

	canvas, err := paintFrame(owner, opts)
	if err != nil {
		return nil, err
	}
	if !hasImage(box.Decoration()) {
		return canvas, nil
	}

	timer := time.NewTimer(opts.imageWait)
	defer timer.Stop()
	select {
	case <-owner.PaintRequested():
	case <-a.imageErrs:
		a.log.Warn().Msg("decoration image failed to load; painting without it")
		return canvas, nil
	case <-timer.C:
		a.log.Warn().Dur("waited", opts.imageWait).Msg("decoration image did not load in time; painting without it")
		return canvas, nil
	case <-ctx.Done():
		_ = canvas.Close()
		return nil, ctx.Err()
	}

	_ = canvas.Close()
	a.log.Debug().Msg("decoration image loaded; repainting")
	return paintFrame(owner, opts)
}

// paintFrame paints every render object owner has scheduled onto a new
// canvas.
func paintFrame(owner *layout.PipelineOwner, opts *renderOptions) (*raster.Canvas, error) {
	objects := owner.FlushPaint()
	canvas := raster.NewCanvas(opts.width, opts.height)
	pc := &layout.PaintContext{Canvas: canvas}
	for _, obj := range objects {
		if err := pc.PaintChild(obj, graphics.Offset{}); err != nil {
			_ = canvas.Close()
			return nil, err
		}
	}
	if err := canvas.Err(); err != nil {
		_ = canvas.Close()
		return nil, err
	}
	return canvas, nil
}

func hasImage(d decoration.Decoration) bool {
	switch d := d.(type) {
	case *decoration.ShapeDecoration:
		return d.Image() != nil
	case *decoration.BoxDecoration:
		return d.Image != nil
	default:
		return false
	}
}
