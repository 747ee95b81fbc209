package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/subtlepseudonym/growth"

	"github.com/spf13/cobra"
)

func NewPercentileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percentile",
		Short: "Score record documents against the growth standards",
		Args:  cobra.MinimumNArgs(1),
		RunE:  percentile,
	}

	cmd.Flags().String("sex", "", "Override the document's sex value")

	return cmd
}

type assessmentOutput struct {
	RecordedAt time.Time  `json:"recorded_at"`
	Sex        growth.Sex `json:"sex"`
	growth.Assessment
}

func percentile(cmd *cobra.Command, args []string) error {
	sexFlag, err := cmd.Flags().GetString("sex")
	if err != nil {
		return fmt.Errorf("sex flag: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	for _, arg := range args {
		doc, err := ReadDocument(arg)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		sex := documentSex(doc, sexFlag)
		for _, record := range doc.Records {
			out := assessmentOutput{
				RecordedAt: record.RecordedAt,
				Sex:        sex,
				Assessment: growth.Assess(record, sex),
			}

			err = encoder.Encode(out)
			if err != nil {
				return fmt.Errorf("encode assessment: %w", err)
			}
		}
	}

	return nil
}
