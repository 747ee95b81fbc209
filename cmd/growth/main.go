package main

import (
	"os"

	"github.com/spf13/cobra"
)

var Version string

func main() {
	root := &cobra.Command{
		Use:          "growth",
		Short:        "Compute infant growth percentiles and velocity",
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(NewChartCommand())
	root.AddCommand(NewETLCommand())
	root.AddCommand(NewLineCommand())
	root.AddCommand(NewPercentileCommand())
	root.AddCommand(NewVelocityCommand())

	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
