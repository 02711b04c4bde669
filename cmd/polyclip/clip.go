package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/config"
)

var (
	clipPlane  planeFlags
	clipOutput string
)

var clipCmd = &cobra.Command{
	Use:   "clip [file]",
	Short: "Keep the part of a model in a half-space",
	Long: `Clip every facet of the model to the half-space a*x+b*y+c*z+d >= 0 and write
the remaining polygons as OBJ. Points on the plane are kept.`,
	Example: "  polyclip clip part.stl --plane 0,0,1,-5 -o top.obj",
	Args:    cobra.ExactArgs(1),
	RunE:    runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)

	clipPlane.register(clipCmd.Flags())
	clipCmd.Flags().StringVarP(&clipOutput, "output", "o", "", "OBJ file to write")
	_ = clipCmd.MarkFlagRequired("plane")
}

func runClip(cmd *cobra.Command, args []string) error {
	job := &config.Job{
		Input:     args[0],
		Operation: config.OpClip,
		Plane:     clipPlane.plane,
		Rotate:    clipPlane.rotate,
		Output:    clipOutput,
	}
	if clipOutput == "" {
		job.Output = modelName(args[0]) + "_clip.obj"
	}
	if err := job.Validate(); err != nil {
		return err
	}
	return execute(cmd, job, "", nil)
}
