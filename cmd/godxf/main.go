package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/godxf/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "godxf",
	Short: "A CLI tool for inspecting, measuring and rendering DXF drawings",
	Long: `godxf is a command-line tool for working with 2D DXF drawings.
It parses lines, circles, arcs and polylines from the ENTITIES section,
reports drawing statistics and measurements, and renders drawings to PNG.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
