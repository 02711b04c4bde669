package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/config"
)

var (
	boxMin    []float64
	boxMax    []float64
	boxOutput string
)

var boxCmd = &cobra.Command{
	Use:   "box [file]",
	Short: "Keep the part of a model inside an axis-aligned box",
	Long: `Clip every facet of the model to the box spanned by --min and --max and write
the remaining polygons as OBJ. The box boundary is kept.`,
	Example: "  polyclip box part.stl --min 0,0,0 --max 10,10,5 -o cut.obj",
	Args:    cobra.ExactArgs(1),
	RunE:    runBox,
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().Float64SliceVar(&boxMin, "min", nil, "Box corner x,y,z")
	boxCmd.Flags().Float64SliceVar(&boxMax, "max", nil, "Opposite box corner x,y,z")
	boxCmd.Flags().StringVarP(&boxOutput, "output", "o", "", "OBJ file to write")
	_ = boxCmd.MarkFlagRequired("min")
	_ = boxCmd.MarkFlagRequired("max")
}

func runBox(cmd *cobra.Command, args []string) error {
	job := &config.Job{
		Input:     args[0],
		Operation: config.OpBox,
		Box:       &config.BoxSpec{Min: boxMin, Max: boxMax},
		Output:    boxOutput,
	}
	if boxOutput == "" {
		job.Output = modelName(args[0]) + "_box.obj"
	}
	if err := job.Validate(); err != nil {
		return err
	}
	return execute(cmd, job, "", nil)
}
