package growth

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Below this magnitude L is treated as zero and the Box-Cox transform
// degenerates to its log form, avoiding 1/L blowup.
const lmsLogThreshold = 0.001

// ZScore converts a raw measurement in the reference table's native unit
// into a standardized score against the given parameters. Non-positive
// measurements resolve nothing.
func ZScore(measurement float64, lms LMSParams) (float64, bool) {
	if measurement <= 0 {
		return 0, false
	}

	if math.Abs(lms.L) < lmsLogThreshold {
		return math.Log(measurement/lms.M) / lms.S, true
	}
	return (math.Pow(measurement/lms.M, lms.L) - 1) / (lms.L * lms.S), true
}

// PercentileFromZ maps a standardized score onto [0,100], rounded to one
// decimal place.
func PercentileFromZ(z float64) float64 {
	return roundTo(100*distuv.UnitNormal.CDF(z), 1)
}

// ZForPercentile is the quantile of the standard normal at percentile/100.
// Percentiles 0 and 100 yield -Inf and +Inf respectively.
func ZForPercentile(percentile float64) float64 {
	return distuv.UnitNormal.Quantile(percentile / 100)
}

type PercentileResult struct {
	Percentile float64 `json:"percentile"`
	ZScore     float64 `json:"z_score"`
}

// Assessment carries per-measurement percentile results for one record.
// A nil field means that measurement was absent or could not be scored.
type Assessment struct {
	AgeMonths float64           `json:"age_months"`
	Weight    *PercentileResult `json:"weight,omitempty"`
	Height    *PercentileResult `json:"height,omitempty"`
	Head      *PercentileResult `json:"head,omitempty"`
}

func (a Assessment) Result(t MeasurementType) *PercentileResult {
	switch t {
	case MeasurementWeight:
		return a.Weight
	case MeasurementHeight:
		return a.Height
	case MeasurementHead:
		return a.Head
	}
	return nil
}

// Assess scores every measurement present on the record against the
// reference tables. Fields that are absent, non-positive, or outside the
// table's age range are skipped independently; the rest still compute.
func Assess(rec GrowthRecord, sex Sex) Assessment {
	age := AgeInMonths(rec.DateOfBirth, rec.RecordedAt)
	return Assessment{
		AgeMonths: age,
		Weight:    assessValue(rec.Reference(MeasurementWeight), MeasurementWeight, sex, age),
		Height:    assessValue(rec.Reference(MeasurementHeight), MeasurementHeight, sex, age),
		Head:      assessValue(rec.Reference(MeasurementHead), MeasurementHead, sex, age),
	}
}

func assessValue(value *float64, t MeasurementType, sex Sex, ageMonths float64) *PercentileResult {
	if value == nil {
		return nil
	}

	lms, ok := LMSFor(t, sex, ageMonths)
	if !ok {
		return nil
	}

	z, ok := ZScore(*value, lms)
	if !ok {
		return nil
	}

	return &PercentileResult{
		Percentile: PercentileFromZ(z),
		ZScore:     roundTo(z, 2),
	}
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
