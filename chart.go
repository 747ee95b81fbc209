package growth

import (
	"fmt"
	"math"
)

// MeasurementFromZ inverts ZScore: it reconstructs the raw measurement (in
// the table's native unit) that would standardize to z under the given
// parameters.
func MeasurementFromZ(z float64, lms LMSParams) float64 {
	if math.Abs(lms.L) < lmsLogThreshold {
		return lms.M * math.Exp(lms.S*z)
	}
	return lms.M * math.Pow(1+lms.L*lms.S*z, 1/lms.L)
}

// ChartPercentiles are the standard curves drawn on a growth chart.
var ChartPercentiles = []float64{1, 3, 5, 10, 15, 25, 50, 75, 85, 90, 95, 97, 99}

// z-values for ChartPercentiles, computed once rather than per row
var chartZ = func() []float64 {
	zs := make([]float64, len(ChartPercentiles))
	for i, p := range ChartPercentiles {
		zs[i] = ZForPercentile(p)
	}
	return zs
}()

// ChartRow holds one month's curve values keyed by percentile name
// ("p03", "p50", ...).
type ChartRow struct {
	AgeMonths   int                `json:"age_months"`
	Percentiles map[string]float64 `json:"percentiles"`
}

// Keys are zero-padded so their lexical order matches curve order; JSON
// map marshaling sorts keys lexically.
func percentileKey(p float64) string {
	return fmt.Sprintf("p%02.0f", p)
}

// ChartData generates percentile curve rows for each integer month in
// [startMonth, endMonth]. Months that resolve no reference parameters are
// skipped; an empty or reversed range yields no rows. Values are rounded
// to two decimal places.
func ChartData(t MeasurementType, sex Sex, startMonth, endMonth int) []ChartRow {
	if endMonth < startMonth {
		return nil
	}

	rows := make([]ChartRow, 0, endMonth-startMonth+1)
	for month := startMonth; month <= endMonth; month++ {
		lms, ok := LMSFor(t, sex, float64(month))
		if !ok {
			continue
		}

		row := ChartRow{
			AgeMonths:   month,
			Percentiles: make(map[string]float64, len(ChartPercentiles)),
		}
		for i, p := range ChartPercentiles {
			row.Percentiles[percentileKey(p)] = roundTo(MeasurementFromZ(chartZ[i], lms), 2)
		}
		rows = append(rows, row)
	}

	return rows
}
