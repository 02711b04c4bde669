package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/config"
)

var (
	splitPlane     planeFlags
	splitExclusive bool
	splitNegative  string
	splitPositive  string
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a model in two along a plane",
	Long: `Split every facet of the model by the plane a*x+b*y+c*z+d = 0. Polygons on the
negative and non-negative sides are written to separate OBJ files. Points on the
plane go to the non-negative side unless --exclusive is set.`,
	Example: "  polyclip split part.stl --plane 1,0,0,0 --neg left.obj --pos right.obj",
	Args:    cobra.ExactArgs(1),
	RunE:    runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitPlane.register(splitCmd.Flags())
	splitCmd.Flags().BoolVar(&splitExclusive, "exclusive", false, "Credit points on the plane to the negative side")
	splitCmd.Flags().StringVar(&splitNegative, "neg", "", "OBJ file for the negative side")
	splitCmd.Flags().StringVar(&splitPositive, "pos", "", "OBJ file for the non-negative side")
	_ = splitCmd.MarkFlagRequired("plane")
}

func runSplit(cmd *cobra.Command, args []string) error {
	job := &config.Job{
		Input:     args[0],
		Operation: config.OpSplit,
		Plane:     splitPlane.plane,
		Rotate:    splitPlane.rotate,
		Exclusive: splitExclusive,
		Negative:  splitNegative,
		Positive:  splitPositive,
	}
	if splitNegative == "" && splitPositive == "" {
		name := modelName(args[0])
		job.Negative, job.Positive = name+"_neg.obj", name+"_pos.obj"
	}
	if err := job.Validate(); err != nil {
		return err
	}
	return execute(cmd, job, "", nil)
}
