package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/spf13/cobra"
)

var (
	entCount int
	entKind  string
)

var entitiesCmd = &cobra.Command{
	Use:   "entities [file]",
	Short: "List entities in a DXF drawing",
	Long:  "Display per-entity details including type, bounding box and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)

	entitiesCmd.Flags().IntVarP(&entCount, "count", "n", 10, "Number of entities to display")
	entitiesCmd.Flags().StringVarP(&entKind, "type", "t", "", "Only show entities of this type (LINE, CIRCLE, ARC, POLYLINE)")
}

func runEntities(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := dxf.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DXF file: %v\n", err)
		os.Exit(1)
	}

	kind := strings.ToUpper(entKind)
	entities := make([]dxf.Entity, 0, doc.EntityCount())
	for _, entity := range doc.Entities {
		if kind == "" || entity.Type() == kind {
			entities = append(entities, entity)
		}
	}

	if kind != "" {
		fmt.Printf("%s Entities\n", kind)
	} else {
		fmt.Println("Entities")
	}
	fmt.Println("====================")
	fmt.Printf("Matching entities: %d\n\n", len(entities))

	if entCount > len(entities) {
		entCount = len(entities)
	}

	for i := 0; i < entCount; i++ {
		entity := entities[i]
		fmt.Printf("Entity #%d: %s\n", i, entity.Type())

		switch e := entity.(type) {
		case dxf.Line:
			fmt.Printf("  Start: %s\n", analysis.FormatPoint(e.Start))
			fmt.Printf("  End: %s\n", analysis.FormatPoint(e.End))
			fmt.Printf("  Length: %.6f units\n", e.Length())
		case dxf.Circle:
			fmt.Printf("  Center: %s\n", analysis.FormatPoint(e.Center))
			fmt.Printf("  Radius: %.6f units\n", e.Radius)
		case dxf.Arc:
			fmt.Printf("  Center: %s\n", analysis.FormatPoint(e.Center))
			fmt.Printf("  Radius: %.6f units\n", e.Radius)
			fmt.Printf("  Angles: %.3f to %.3f degrees (sweep %.3f)\n", e.StartAngle, e.EndAngle, e.Sweep())
		case dxf.Polyline:
			fmt.Printf("  Points: %d (closed: %v)\n", len(e.Points), e.Closed)
			fmt.Printf("  Length: %.6f units\n", e.Length())
		}

		box := entity.BBox()
		fmt.Printf("  Bounds: %s to %s\n\n", analysis.FormatPoint(box.Min), analysis.FormatPoint(box.Max))
	}
}
