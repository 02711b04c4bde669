package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/pkg/config"
)

var runCmd = &cobra.Command{
	Use:   "run [job.yaml|job.toml]",
	Short: "Execute a job file",
	Long: `Execute the operation described by a YAML or TOML job file. Paths in the job
are relative to the job file. With --watch the job file itself is watched too.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	jobFile, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	load := func() (*config.Job, error) {
		return config.Load(jobFile)
	}

	job, err := load()
	if err != nil {
		return err
	}
	return execute(cmd, job, jobFile, load)
}
