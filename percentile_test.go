package growth

import (
	"math"
	"testing"
	"time"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestZScore_AtMedian(t *testing.T) {
	lms, _ := LMSFor(MeasurementWeight, SexMale, 6)
	z, ok := ZScore(7.934, lms)
	if !ok {
		t.Fatal("expected a z-score")
	}
	if math.Abs(z) > 1e-9 {
		t.Fatalf("z at median: got %f, want 0", z)
	}
	if p := PercentileFromZ(z); p != 50.0 {
		t.Fatalf("percentile at median: got %f, want 50.0", p)
	}
}

func TestZScore_HeavyInfant(t *testing.T) {
	lms, _ := LMSFor(MeasurementWeight, SexMale, 6)
	z, ok := ZScore(10, lms)
	if !ok {
		t.Fatal("expected a z-score")
	}
	if p := PercentileFromZ(z); p <= 90 {
		t.Fatalf("10kg at 6 months: got percentile %f, want > 90", p)
	}
}

func TestZScore_LogBranch(t *testing.T) {
	lms := LMSParams{L: 0, M: 50, S: 0.04}
	z, ok := ZScore(52, lms)
	if !ok {
		t.Fatal("expected a z-score")
	}
	want := math.Log(52.0/50.0) / 0.04
	if math.Abs(z-want) > 1e-12 {
		t.Fatalf("got %f, want %f", z, want)
	}
}

func TestZScore_NonPositiveMeasurement(t *testing.T) {
	lms, _ := LMSFor(MeasurementWeight, SexMale, 6)
	for _, m := range []float64{0, -1.5} {
		if _, ok := ZScore(m, lms); ok {
			t.Fatalf("expected no z-score for measurement %f", m)
		}
	}
}

func TestPercentileFromZ_Symmetry(t *testing.T) {
	for _, z := range []float64{0, 0.5, 1, 1.645, 2.3, 4} {
		sum := PercentileFromZ(z) + PercentileFromZ(-z)
		if math.Abs(sum-100) > 0.11 {
			t.Fatalf("z=%f: P(z)+P(-z) = %f, want 100", z, sum)
		}
	}
}

func TestZForPercentile_Extremes(t *testing.T) {
	if z := ZForPercentile(0); !math.IsInf(z, -1) {
		t.Fatalf("percentile 0: got %f, want -Inf", z)
	}
	if z := ZForPercentile(100); !math.IsInf(z, 1) {
		t.Fatalf("percentile 100: got %f, want +Inf", z)
	}
	if z := ZForPercentile(50); math.Abs(z) > 1e-12 {
		t.Fatalf("percentile 50: got %f, want 0", z)
	}
}

func TestRoundTrip(t *testing.T) {
	params := []LMSParams{}
	for _, age := range []float64{0, 6, 12.5, 24} {
		for _, key := range []tableKey{
			{MeasurementWeight, SexMale},
			{MeasurementWeight, SexFemale},
			{MeasurementHeight, SexMale},
			{MeasurementHead, SexFemale},
		} {
			lms, ok := LMSFor(key.Measurement, key.Sex, age)
			if !ok {
				t.Fatalf("no parameters for %s/%s at %f", key.Measurement, key.Sex, age)
			}
			params = append(params, lms)
		}
	}

	for _, lms := range params {
		for _, m := range []float64{lms.M * 0.7, lms.M, lms.M * 1.3} {
			z, ok := ZScore(m, lms)
			if !ok {
				t.Fatalf("no z-score for %f under %+v", m, lms)
			}

			back, ok := ZScore(MeasurementFromZ(z, lms), lms)
			if !ok {
				t.Fatalf("no z-score for reconstructed measurement under %+v", lms)
			}
			if math.Abs(back-z) > 1e-6 {
				t.Fatalf("round trip under %+v: got %f, want %f", lms, back, z)
			}
		}
	}
}

func TestZScore_Monotonic(t *testing.T) {
	lms, _ := LMSFor(MeasurementWeight, SexFemale, 9)
	prev := math.Inf(-1)
	for m := 4.0; m <= 14.0; m += 0.25 {
		z, ok := ZScore(m, lms)
		if !ok {
			t.Fatalf("no z-score for %f", m)
		}
		if z <= prev {
			t.Fatalf("z not strictly increasing at measurement %f: %f <= %f", m, z, prev)
		}
		prev = z
	}
}

func TestAssess_AtMedians(t *testing.T) {
	dob := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := GrowthRecord{
		// exactly 6 months: 6 * 30.4375 * 24 hours
		RecordedAt:  dob.Add(4383 * time.Hour),
		DateOfBirth: dob,
		WeightGrams: float64Ptr(7934),
		HeightMm:    float64Ptr(676.236),
		HeadMm:      float64Ptr(433.306),
	}

	assessment := Assess(rec, SexMale)
	if math.Abs(assessment.AgeMonths-6) > 1e-9 {
		t.Fatalf("age: got %f, want 6", assessment.AgeMonths)
	}

	for _, mt := range MeasurementTypes {
		result := assessment.Result(mt)
		if result == nil {
			t.Fatalf("%s: expected a result", mt)
		}
		if result.Percentile != 50.0 {
			t.Fatalf("%s: got percentile %f, want 50.0", mt, result.Percentile)
		}
		if result.ZScore != 0 {
			t.Fatalf("%s: got z-score %f, want 0", mt, result.ZScore)
		}
	}
}

func TestAssess_FieldIndependence(t *testing.T) {
	dob := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := GrowthRecord{
		RecordedAt:  dob.AddDate(0, 0, 100),
		DateOfBirth: dob,
		WeightGrams: float64Ptr(5800),
		HeightMm:    float64Ptr(-10), // invalid, must not abort weight
	}

	assessment := Assess(rec, SexFemale)
	if assessment.Weight == nil {
		t.Fatal("weight: expected a result")
	}
	if assessment.Height != nil {
		t.Fatalf("height: got %+v, want nil for non-positive measurement", assessment.Height)
	}
	if assessment.Head != nil {
		t.Fatalf("head: got %+v, want nil for absent measurement", assessment.Head)
	}
}

func TestAssess_RecordBeforeBirth(t *testing.T) {
	dob := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := GrowthRecord{
		RecordedAt:  dob.AddDate(0, 0, -7),
		DateOfBirth: dob,
		WeightGrams: float64Ptr(3200),
	}

	assessment := Assess(rec, SexMale)
	if assessment.Weight != nil {
		t.Fatalf("got %+v, want nil for negative age", assessment.Weight)
	}
}

func TestSexOrDefault(t *testing.T) {
	cases := map[string]Sex{
		"male":    SexMale,
		"female":  SexFemale,
		"":        SexMale,
		"FEMALE":  SexMale,
		"unknown": SexMale,
	}
	for input, want := range cases {
		if got := SexOrDefault(input); got != want {
			t.Fatalf("%q: got %s, want %s", input, got, want)
		}
	}
}

func TestAgeInMonths(t *testing.T) {
	dob := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	at := dob.AddDate(0, 0, 609) // 609 / 30.4375 = 20.01...
	got := AgeInMonths(dob, at)
	want := 609.0 / 30.4375
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %f, want %f", got, want)
	}
}
