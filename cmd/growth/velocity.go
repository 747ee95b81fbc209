package main

import (
	"encoding/json"
	"fmt"

	"github.com/subtlepseudonym/growth"

	"github.com/spf13/cobra"
)

func NewVelocityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Compute growth velocity across a record document",
		Args:  cobra.MinimumNArgs(1),
		RunE:  velocity,
	}

	cmd.Flags().String("unit", string(growth.UnitWeek), "Velocity time unit (day, week)")

	return cmd
}

func velocity(cmd *cobra.Command, args []string) error {
	unitFlag, err := cmd.Flags().GetString("unit")
	if err != nil {
		return fmt.Errorf("unit flag: %w", err)
	}
	unit, ok := growth.ParseTimeUnit(unitFlag)
	if !ok {
		return fmt.Errorf("unknown time unit: %q", unitFlag)
	}

	for _, arg := range args {
		doc, err := ReadDocument(arg)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		report := growth.SummarizeVelocity(doc.Records, unit)
		b, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		fmt.Println(string(b))
	}

	return nil
}
