package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model",
	Long:  "Show triangle count, surface area, volume, bounding box and edge statistics of an STL or OpenSCAD model.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := loadModel(cmd.Context(), filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeModel(model)
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Model Information")
	fmt.Fprintln(w, "=================")
	if model.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	if result.Degenerate > 0 {
		fmt.Fprintf(w, "  Degenerate: %d\n", result.Degenerate)
	}
	fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n\n", result.Volume)

	if result.TriangleCount == 0 {
		return nil
	}

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Fprintf(w, "  Size: %s\n\n", analysis.FormatVector(result.Dimensions))

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(w, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}
