package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a DXF drawing",
	Long:  "Show entity counts, bounding box, dimensions, total stroked length and parser warnings.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := dxf.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DXF file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeDocument(doc)

	fmt.Println("DXF File Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Entities:")
	fmt.Printf("  Lines: %d\n", result.LineCount)
	fmt.Printf("  Circles: %d\n", result.CircleCount)
	fmt.Printf("  Arcs: %d\n", result.ArcCount)
	fmt.Printf("  Polylines: %d (%d segments)\n", result.PolylineCount, result.SegmentCount)
	fmt.Printf("  Total: %d\n\n", result.EntityCount)

	if result.BoundingBox.IsEmpty() {
		fmt.Println("Bounding Box: empty (no entities)")
	} else {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatPoint(result.BoundingBox.Center()))

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
		fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
		fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())
	}

	fmt.Printf("Snap vertices: %d\n", result.VertexCount)
	fmt.Printf("Total stroked length: %.6f units\n", result.TotalLength)

	if len(doc.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, warning := range doc.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}
