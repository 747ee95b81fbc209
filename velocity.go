package growth

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// VelocityField is the change in one measurement between two records:
// the raw delta in recorded units and the delta normalized to the report's
// time unit, rounded to two decimal places.
type VelocityField struct {
	Delta    float64 `json:"delta"`
	Velocity float64 `json:"velocity"`
}

// VelocityDataPoint describes the change between two consecutive records.
// A nil measurement field means the measurement was absent from at least
// one of the pair.
type VelocityDataPoint struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	Days int       `json:"days"`

	Weight *VelocityField `json:"weight,omitempty"`
	Height *VelocityField `json:"height,omitempty"`
	Head   *VelocityField `json:"head,omitempty"`
}

func (p VelocityDataPoint) Field(t MeasurementType) *VelocityField {
	switch t {
	case MeasurementWeight:
		return p.Weight
	case MeasurementHeight:
		return p.Height
	case MeasurementHead:
		return p.Head
	}
	return nil
}

func (p *VelocityDataPoint) setField(t MeasurementType, f *VelocityField) {
	switch t {
	case MeasurementWeight:
		p.Weight = f
	case MeasurementHeight:
		p.Height = f
	case MeasurementHead:
		p.Head = f
	}
}

// VelocityBetween computes per-measurement rate of change from prev to
// curr. Elapsed days are rounded and floored at one, so same-day records
// never divide by zero; sub-day precision is not a goal here.
func VelocityBetween(prev, curr GrowthRecord, unit TimeUnit) VelocityDataPoint {
	days := int(math.Round(curr.RecordedAt.Sub(prev.RecordedAt).Hours() / 24))
	if days < 1 {
		days = 1
	}

	point := VelocityDataPoint{
		From: prev.RecordedAt,
		To:   curr.RecordedAt,
		Days: days,
	}

	for _, t := range MeasurementTypes {
		pv, cv := prev.Raw(t), curr.Raw(t)
		if pv == nil || cv == nil {
			continue
		}

		delta := *cv - *pv
		point.setField(t, &VelocityField{
			Delta:    delta,
			Velocity: roundTo(delta/float64(days)*unit.Days(), 2),
		})
	}

	return point
}

// MeasurementTrend aggregates one measurement across a record sequence.
// AverageVelocity is the mean of pairwise velocities; NetChange is
// last-minus-first over the records carrying the measurement, which is not
// the same as summing pairwise deltas when intermediate records omit it.
type MeasurementTrend struct {
	AverageVelocity *float64 `json:"average_velocity,omitempty"`
	NetChange       *float64 `json:"net_change,omitempty"`
}

type VelocitySummary struct {
	Weight *MeasurementTrend `json:"weight,omitempty"`
	Height *MeasurementTrend `json:"height,omitempty"`
	Head   *MeasurementTrend `json:"head,omitempty"`
}

func (s VelocitySummary) Trend(t MeasurementType) *MeasurementTrend {
	switch t {
	case MeasurementWeight:
		return s.Weight
	case MeasurementHeight:
		return s.Height
	case MeasurementHead:
		return s.Head
	}
	return nil
}

func (s *VelocitySummary) setTrend(t MeasurementType, trend *MeasurementTrend) {
	switch t {
	case MeasurementWeight:
		s.Weight = trend
	case MeasurementHeight:
		s.Height = trend
	case MeasurementHead:
		s.Head = trend
	}
}

type Correlation struct {
	MeasurementA MeasurementType `json:"measurement_a"`
	MeasurementB MeasurementType `json:"measurement_b"`
	Correlation  float64         `json:"correlation"`
}

type VelocityReport struct {
	Unit         TimeUnit            `json:"unit"`
	Points       []VelocityDataPoint `json:"points"`
	Summary      VelocitySummary     `json:"summary"`
	Correlations []Correlation       `json:"correlations,omitempty"`
}

// SummarizeVelocity computes pairwise velocity across a chronologically
// sorted record sequence, plus per-measurement trends and correlations
// between measurement velocity series.
func SummarizeVelocity(records []GrowthRecord, unit TimeUnit) VelocityReport {
	report := VelocityReport{Unit: unit}
	if len(records) > 1 {
		report.Points = make([]VelocityDataPoint, 0, len(records)-1)
		for i := 1; i < len(records); i++ {
			report.Points = append(report.Points, VelocityBetween(records[i-1], records[i], unit))
		}
	}

	for _, t := range MeasurementTypes {
		velocities := make([]float64, 0, len(report.Points))
		for _, point := range report.Points {
			if f := point.Field(t); f != nil {
				velocities = append(velocities, f.Velocity)
			}
		}

		var first, last *float64
		for _, rec := range records {
			if v := rec.Raw(t); v != nil {
				if first == nil {
					first = v
				}
				last = v
			}
		}
		if first == nil {
			continue
		}

		trend := &MeasurementTrend{}
		if len(velocities) > 0 {
			mean := stat.Mean(velocities, nil)
			trend.AverageVelocity = &mean
		}
		net := *last - *first
		trend.NetChange = &net
		report.Summary.setTrend(t, trend)
	}

	report.Correlations = velocityCorrelations(report.Points)
	return report
}

var correlates = [][2]MeasurementType{
	{MeasurementWeight, MeasurementHeight},
	{MeasurementWeight, MeasurementHead},
	{MeasurementHeight, MeasurementHead},
}

func velocityCorrelations(points []VelocityDataPoint) []Correlation {
	correlations := make([]Correlation, 0, len(correlates))
	for _, pair := range correlates {
		a := make([]float64, 0, len(points))
		b := make([]float64, 0, len(points))
		for _, point := range points {
			fa, fb := point.Field(pair[0]), point.Field(pair[1])
			if fa == nil || fb == nil {
				continue
			}
			a = append(a, fa.Velocity)
			b = append(b, fb.Velocity)
		}
		if len(a) < 2 {
			continue
		}

		correlation := stat.Correlation(a, b, nil)
		if math.IsNaN(correlation) {
			continue
		}

		correlations = append(correlations, Correlation{
			MeasurementA: pair[0],
			MeasurementB: pair[1],
			Correlation:  correlation,
		})
	}

	if len(correlations) == 0 {
		return nil
	}
	return correlations
}
