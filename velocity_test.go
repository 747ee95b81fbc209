package growth

import (
	"math"
	"testing"
	"time"
)

func record(at time.Time, weight, height, head *float64) GrowthRecord {
	return GrowthRecord{
		WeightGrams: weight,
		HeightMm:    height,
		HeadMm:      head,
		RecordedAt:  at,
		DateOfBirth: at.AddDate(0, -6, 0),
	}
}

func TestVelocityBetween_WeeklyWeight(t *testing.T) {
	start := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	prev := record(start, float64Ptr(4000), nil, nil)
	curr := record(start.AddDate(0, 0, 14), float64Ptr(4140), nil, nil)

	point := VelocityBetween(prev, curr, UnitWeek)
	if point.Days != 14 {
		t.Fatalf("days: got %d, want 14", point.Days)
	}
	if point.Weight == nil {
		t.Fatal("weight: expected a velocity")
	}
	if point.Weight.Delta != 140 {
		t.Fatalf("delta: got %f, want 140", point.Weight.Delta)
	}
	if point.Weight.Velocity != 70.0 {
		t.Fatalf("velocity: got %f, want 70.0", point.Weight.Velocity)
	}
}

func TestVelocityBetween_SameTimestamp(t *testing.T) {
	at := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	prev := record(at, float64Ptr(4000), nil, nil)
	curr := record(at, float64Ptr(4050), nil, nil)

	point := VelocityBetween(prev, curr, UnitDay)
	if point.Days != 1 {
		t.Fatalf("days: got %d, want 1 (floor)", point.Days)
	}
	if point.Weight == nil || point.Weight.Velocity != 50.0 {
		t.Fatalf("velocity: got %+v, want 50.0", point.Weight)
	}
}

func TestVelocityBetween_Sign(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	prev := record(start, float64Ptr(4200), float64Ptr(550), nil)
	curr := record(start.AddDate(0, 0, 7), float64Ptr(4100), float64Ptr(560), nil)

	point := VelocityBetween(prev, curr, UnitDay)
	if point.Weight.Velocity >= 0 {
		t.Fatalf("decreasing weight: got velocity %f, want negative", point.Weight.Velocity)
	}
	if point.Height.Velocity <= 0 {
		t.Fatalf("increasing height: got velocity %f, want positive", point.Height.Velocity)
	}
}

func TestVelocityBetween_MissingField(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	prev := record(start, float64Ptr(4000), float64Ptr(550), nil)
	curr := record(start.AddDate(0, 0, 7), float64Ptr(4100), nil, float64Ptr(400))

	point := VelocityBetween(prev, curr, UnitDay)
	if point.Weight == nil {
		t.Fatal("weight present in both records, expected a velocity")
	}
	if point.Height != nil {
		t.Fatalf("height absent in curr: got %+v, want nil", point.Height)
	}
	if point.Head != nil {
		t.Fatalf("head absent in prev: got %+v, want nil", point.Head)
	}
}

func TestSummarizeVelocity_NetChangeSkipsGaps(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []GrowthRecord{
		record(start, float64Ptr(4000), nil, nil),
		record(start.AddDate(0, 0, 10), nil, float64Ptr(550), nil),
		record(start.AddDate(0, 0, 20), float64Ptr(4300), nil, nil),
	}

	report := SummarizeVelocity(records, UnitDay)
	if len(report.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(report.Points))
	}

	trend := report.Summary.Weight
	if trend == nil {
		t.Fatal("weight: expected a trend")
	}
	// no consecutive pair has weight in both records
	if trend.AverageVelocity != nil {
		t.Fatalf("average: got %f, want nil", *trend.AverageVelocity)
	}
	// net change still spans first to last record carrying the field
	if trend.NetChange == nil || *trend.NetChange != 300 {
		t.Fatalf("net change: got %v, want 300", trend.NetChange)
	}

	if report.Summary.Head != nil {
		t.Fatalf("head never recorded: got %+v, want nil", report.Summary.Head)
	}
}

func TestSummarizeVelocity_Averages(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []GrowthRecord{
		record(start, float64Ptr(4000), nil, nil),
		record(start.AddDate(0, 0, 10), float64Ptr(4100), nil, nil), // 10 g/day
		record(start.AddDate(0, 0, 20), float64Ptr(4300), nil, nil), // 20 g/day
	}

	report := SummarizeVelocity(records, UnitDay)
	trend := report.Summary.Weight
	if trend == nil || trend.AverageVelocity == nil {
		t.Fatal("weight: expected an average velocity")
	}
	if math.Abs(*trend.AverageVelocity-15) > 1e-9 {
		t.Fatalf("average: got %f, want 15", *trend.AverageVelocity)
	}
	if trend.NetChange == nil || *trend.NetChange != 300 {
		t.Fatalf("net change: got %v, want 300", trend.NetChange)
	}
}

func TestSummarizeVelocity_Correlations(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []GrowthRecord{
		record(start, float64Ptr(4000), float64Ptr(500), nil),
		record(start.AddDate(0, 0, 10), float64Ptr(4100), float64Ptr(510), nil),
		record(start.AddDate(0, 0, 20), float64Ptr(4300), float64Ptr(530), nil),
	}

	report := SummarizeVelocity(records, UnitDay)
	if len(report.Correlations) != 1 {
		t.Fatalf("got %d correlations, want 1", len(report.Correlations))
	}

	c := report.Correlations[0]
	if c.MeasurementA != MeasurementWeight || c.MeasurementB != MeasurementHeight {
		t.Fatalf("got pair %s/%s, want weight/height", c.MeasurementA, c.MeasurementB)
	}
	if math.Abs(c.Correlation-1) > 1e-9 {
		t.Fatalf("got correlation %f, want 1", c.Correlation)
	}
}

func TestSummarizeVelocity_FewRecords(t *testing.T) {
	report := SummarizeVelocity(nil, UnitWeek)
	if len(report.Points) != 0 || report.Summary.Weight != nil {
		t.Fatalf("empty sequence: got %+v", report)
	}

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	single := []GrowthRecord{record(start, float64Ptr(4000), nil, nil)}
	report = SummarizeVelocity(single, UnitWeek)
	if len(report.Points) != 0 {
		t.Fatalf("single record: got %d points, want 0", len(report.Points))
	}

	trend := report.Summary.Weight
	if trend == nil || trend.NetChange == nil || *trend.NetChange != 0 {
		t.Fatalf("single record: got %+v, want zero net change", trend)
	}
	if trend.AverageVelocity != nil {
		t.Fatalf("single record: got average %f, want nil", *trend.AverageVelocity)
	}
}
