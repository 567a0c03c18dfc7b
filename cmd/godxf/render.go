package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	renderOutput     string
	renderWidth      int
	renderHeight     int
	renderPadding    float64
	renderLineColor  string
	renderBackground string
	renderGrid       bool
	renderGridStep   float64
	renderZoom       float64
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a DXF drawing to a PNG image",
	Long:  "Rasterize the drawing, fit to the requested image size, and write it as PNG.",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "drawing.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1200, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 800, "image height in pixels")
	renderCmd.Flags().Float64Var(&renderPadding, "padding", 24, "padding around the drawing in pixels")
	renderCmd.Flags().StringVar(&renderLineColor, "line-color", "#e8e8e8", "entity stroke color (hex)")
	renderCmd.Flags().StringVar(&renderBackground, "background", "#1e1e1e", "background color (hex)")
	renderCmd.Flags().BoolVar(&renderGrid, "grid", true, "draw the background grid")
	renderCmd.Flags().Float64Var(&renderGridStep, "grid-step", 10, "base grid step in drawing units")
	renderCmd.Flags().Float64Var(&renderZoom, "zoom", 1, "zoom factor applied after fitting")
}

func runRender(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := dxf.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DXF file: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range doc.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	if renderWidth <= 0 || renderHeight <= 0 {
		fmt.Fprintln(os.Stderr, "Error: image dimensions must be positive")
		os.Exit(1)
	}

	surface := viewer.NewRasterSurface(renderWidth, renderHeight)
	opts := viewer.RenderOptions{
		LineColor:       renderLineColor,
		BackgroundColor: renderBackground,
		Padding:         renderPadding,
		ShowGrid:        renderGrid,
		GridStep:        renderGridStep,
		Viewport:        viewer.Viewport{Zoom: viewer.ClampZoom(renderZoom)},
	}
	viewer.Render(surface, doc, opts)

	out, err := os.Create(renderOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := png.Encode(out, surface.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d entities to %s (%dx%d)\n",
		doc.EntityCount(), renderOutput, renderWidth, renderHeight)
}
