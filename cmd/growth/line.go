package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/subtlepseudonym/growth"

	"github.com/spf13/cobra"
)

func NewLineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Convert record document to influx line protocol",
		Args:  cobra.MinimumNArgs(1),
		RunE:  line,
	}

	flags := cmd.Flags()
	flags.String("sex", "", "Override the document's sex value")
	flags.String("source", DefaultSource, "Record source name")

	return cmd
}

func line(cmd *cobra.Command, args []string) error {
	sexFlag, _ := cmd.Flags().GetString("sex")
	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return fmt.Errorf("source flag: %w", err)
	}

	for _, arg := range args {
		doc, err := ReadDocument(arg)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		lineFile := fmt.Sprintf("%s.line", strings.TrimSuffix(path.Base(arg), path.Ext(arg)))
		output, err := os.Create(lineFile)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		defer output.Close()

		tags := map[string]string{
			"source": source,
		}

		err = growth.WriteLineProtocol(output, documentSex(doc, sexFlag), doc.Records, tags)
		if err != nil {
			return fmt.Errorf("write line protocol: %w", err)
		}
	}

	return nil
}
