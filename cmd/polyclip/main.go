package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/version"
)

var (
	verbose bool
	watch   bool

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "polyclip",
	Short: "Clip and split STL meshes against planes and boxes",
	Long: `polyclip cuts the facets of STL (or OpenSCAD) models with half-spaces and
axis-aligned boxes and writes the resulting polygons as Wavefront OBJ.
Facets are clipped as polygons, so cut faces stay single n-gons instead of
being re-triangulated.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "Re-run whenever the input changes")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
