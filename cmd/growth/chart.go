package main

import (
	"encoding/json"
	"fmt"

	"github.com/subtlepseudonym/growth"

	"github.com/spf13/cobra"
)

func NewChartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Generate percentile curve data for one measurement",
		RunE:  chart,
	}

	flags := cmd.Flags()
	flags.String("type", string(growth.MeasurementWeight), "Measurement type (weight, height, head)")
	flags.String("sex", string(growth.SexMale), "Reference table sex (male, female)")
	flags.Int("start", 0, "First month of the age range")
	flags.Int("end", 24, "Last month of the age range")

	return cmd
}

func chart(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	typeFlag, _ := flags.GetString("type")
	measurement, ok := growth.ParseMeasurementType(typeFlag)
	if !ok {
		return fmt.Errorf("unknown measurement type: %q", typeFlag)
	}

	sexFlag, _ := flags.GetString("sex")
	sex := growth.SexOrDefault(sexFlag)

	start, _ := flags.GetInt("start")
	end, _ := flags.GetInt("end")
	if end < start {
		return fmt.Errorf("end month %d precedes start month %d", end, start)
	}

	rows := growth.ChartData(measurement, sex, start, end)
	b, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	fmt.Println(string(b))

	return nil
}
