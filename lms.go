package growth

import (
	"math"
)

// LMSParams describes the reference population at a single age: the Box-Cox
// power (L), median (M), and coefficient of variation (S).
type LMSParams struct {
	L float64
	M float64
	S float64
}

type ReferenceRow struct {
	AgeMonths int
	LMSParams
}

// maxTableAgeMonths is the last tabulated age. Lookups beyond it return the
// boundary row unchanged; the reference data makes no claim past this age.
const maxTableAgeMonths = 24

type tableKey struct {
	Measurement MeasurementType
	Sex         Sex
}

// LMSFor returns the reference parameters for the given measurement, sex,
// and age in months. Fractional ages interpolate linearly between the two
// bracketing monthly rows. Ages past the table clamp to the final row;
// negative ages resolve nothing.
func LMSFor(t MeasurementType, sex Sex, ageMonths float64) (LMSParams, bool) {
	table, ok := referenceTables[tableKey{t, sex}]
	if !ok {
		return LMSParams{}, false
	}
	if ageMonths < 0 {
		return LMSParams{}, false
	}
	if ageMonths >= maxTableAgeMonths {
		return table[maxTableAgeMonths].LMSParams, true
	}

	lo := int(math.Floor(ageMonths))
	hi := int(math.Ceil(ageMonths))
	if lo == hi || hi >= len(table) {
		return table[lo].LMSParams, true
	}

	frac := ageMonths - float64(lo)
	a, b := table[lo].LMSParams, table[hi].LMSParams
	return LMSParams{
		L: a.L + (b.L-a.L)*frac,
		M: a.M + (b.M-a.M)*frac,
		S: a.S + (b.S-a.S)*frac,
	}, true
}
