package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/subtlepseudonym/growth"
)

const DefaultSource = "unknown"

// Document is the on-disk input format: one subject's sex and their
// growth records.
type Document struct {
	Sex     string                `json:"sex"`
	Records []growth.GrowthRecord `json:"records"`
}

// ReadDocument decodes a record document and returns its records sorted
// chronologically, as the velocity and etl paths require.
func ReadDocument(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	var doc Document
	err = json.NewDecoder(file).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	sort.Slice(doc.Records, func(i, j int) bool {
		return doc.Records[i].RecordedAt.Before(doc.Records[j].RecordedAt)
	})

	return &doc, nil
}

// documentSex resolves the subject's sex from the --sex flag when set,
// falling back to the document value. Anything unrecognized coerces to
// male, the engine's documented default.
func documentSex(doc *Document, flagValue string) growth.Sex {
	if flagValue != "" {
		return growth.SexOrDefault(flagValue)
	}
	return growth.SexOrDefault(doc.Sex)
}
