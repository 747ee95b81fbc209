package growth

import (
	"fmt"
	"io"
	"sort"

	lp "github.com/influxdata/line-protocol/v2/lineprotocol"
)

const lineMeasurement = "growth"

// WriteLineProtocol encodes each record, along with its computed
// percentiles and z-scores, as one influx line protocol point. The engine
// itself performs no I/O; out is supplied by the caller.
func WriteLineProtocol(out io.Writer, sex Sex, records []GrowthRecord, tags map[string]string) error {
	// Line protocol requires tags to be added in lexical order
	tagKeys := make([]string, 0, len(tags))
	for key := range tags {
		tagKeys = append(tagKeys, key)
	}
	sort.Strings(tagKeys)

	var encoder lp.Encoder
	encoder.SetPrecision(lp.Second)

	for _, record := range records {
		encoder.StartLine(lineMeasurement)

		for _, key := range tagKeys {
			encoder.AddTag(key, tags[key])
		}

		addField(&encoder, "weight_grams", record.WeightGrams)
		addField(&encoder, "height_mm", record.HeightMm)
		addField(&encoder, "head_mm", record.HeadMm)

		assessment := Assess(record, sex)
		for _, t := range MeasurementTypes {
			if result := assessment.Result(t); result != nil {
				addField(&encoder, fmt.Sprintf("%s_percentile", t), &result.Percentile)
				addField(&encoder, fmt.Sprintf("%s_z_score", t), &result.ZScore)
			}
		}

		encoder.EndLine(record.RecordedAt)
		if err := encoder.Err(); err != nil {
			return fmt.Errorf("encoder: %w", err)
		}
	}

	_, err := out.Write(encoder.Bytes())
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func addField(encoder *lp.Encoder, key string, value *float64) {
	if value == nil {
		return
	}
	if v, ok := lp.FloatValue(*value); ok {
		encoder.AddField(key, v)
	}
}
