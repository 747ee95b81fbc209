package growth

import (
	"time"
)

type MeasurementType string

const (
	MeasurementWeight MeasurementType = "weight"
	MeasurementHeight MeasurementType = "height"
	MeasurementHead   MeasurementType = "head"
)

// MeasurementTypes lists every supported measurement in a stable order
var MeasurementTypes = []MeasurementType{
	MeasurementWeight,
	MeasurementHeight,
	MeasurementHead,
}

func ParseMeasurementType(s string) (MeasurementType, bool) {
	switch MeasurementType(s) {
	case MeasurementWeight, MeasurementHeight, MeasurementHead:
		return MeasurementType(s), true
	}
	return "", false
}

// Unit is the reference table's native unit for this measurement
func (t MeasurementType) Unit() string {
	switch t {
	case MeasurementWeight:
		return "kilogram"
	case MeasurementHeight, MeasurementHead:
		return "centimeter"
	}
	return "unknown"
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func ParseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), true
	}
	return "", false
}

// SexOrDefault coerces anything other than "male" or "female" to male.
// Stored records predating sex validation rely on this fallback, so it
// lives here rather than in every caller.
func SexOrDefault(s string) Sex {
	if sex, ok := ParseSex(s); ok {
		return sex
	}
	return SexMale
}

type TimeUnit string

const (
	UnitDay  TimeUnit = "day"
	UnitWeek TimeUnit = "week"
)

func ParseTimeUnit(s string) (TimeUnit, bool) {
	switch TimeUnit(s) {
	case UnitDay, UnitWeek:
		return TimeUnit(s), true
	}
	return "", false
}

func (u TimeUnit) Days() float64 {
	if u == UnitWeek {
		return 7
	}
	return 1
}

// GrowthRecord holds one set of raw measurements for a subject. Weight is
// recorded in grams, height and head circumference in millimeters. Nil
// fields were not measured.
type GrowthRecord struct {
	WeightGrams *float64  `json:"weight_grams,omitempty"`
	HeightMm    *float64  `json:"height_mm,omitempty"`
	HeadMm      *float64  `json:"head_mm,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// Raw returns the stored value for the given measurement in its recorded
// unit, or nil if it was not measured.
func (r GrowthRecord) Raw(t MeasurementType) *float64 {
	switch t {
	case MeasurementWeight:
		return r.WeightGrams
	case MeasurementHeight:
		return r.HeightMm
	case MeasurementHead:
		return r.HeadMm
	}
	return nil
}

// scales from recorded units (grams, millimeters) to table units
// (kilograms, centimeters)
const (
	gramsPerKilogram = 1000
	mmPerCentimeter  = 10
)

// Reference returns the stored value converted to the reference table's
// native unit (kilograms for weight, centimeters otherwise), or nil if it
// was not measured.
func (r GrowthRecord) Reference(t MeasurementType) *float64 {
	raw := r.Raw(t)
	if raw == nil {
		return nil
	}

	var v float64
	switch t {
	case MeasurementWeight:
		v = *raw / gramsPerKilogram
	case MeasurementHeight, MeasurementHead:
		v = *raw / mmPerCentimeter
	default:
		return nil
	}
	return &v
}

// daysPerMonth is the mean length of a Gregorian month
const daysPerMonth = 30.4375

// AgeInMonths returns the subject's fractional age in months at the given
// time. Results may be negative if at precedes dob; table lookups reject
// negative ages.
func AgeInMonths(dob, at time.Time) float64 {
	days := at.Sub(dob).Hours() / 24
	return days / daysPerMonth
}
