package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y float64
	point2X, point2Y float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two points in drawing units.
Each point is also snapped to the nearest entity vertex in the drawing.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "x2", "y2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	filename := args[0]

	p1 := geometry.NewPoint(point1X, point1Y)
	p2 := geometry.NewPoint(point2X, point2Y)

	doc, err := dxf.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DXF file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	nearest1, dist1 := analysis.FindNearestVertex(doc, p1)
	nearest2, dist2 := analysis.FindNearestVertex(doc, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatPoint(p1))
	if dist1 >= 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatPoint(nearest1), dist1)
	}

	fmt.Printf("\nPoint 2: %s\n", analysis.FormatPoint(p2))
	if dist2 >= 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatPoint(nearest2), dist2)
	}

	delta := p2.Sub(p1)
	fmt.Printf("\nDelta X: %.6f units\n", delta.X)
	fmt.Printf("Delta Y: %.6f units\n", delta.Y)
	fmt.Printf("Direct distance: %.6f units\n", analysis.DistanceBetweenPoints(p1, p2))

	if dist1 >= 0 && dist2 >= 0 {
		vertexDistance := analysis.DistanceBetweenPoints(nearest1, nearest2)
		fmt.Printf("Distance between nearest vertices: %.6f units\n", vertexDistance)
	}
}
