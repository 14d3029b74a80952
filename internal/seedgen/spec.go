package seedgen

// metricSpec describes the statistical shape of one performance metric for
// a college-aged male baseline. Min/max are expanded to accommodate all
// ages and genders.
type metricSpec struct {
	units          string
	lowerIsBetter  bool
	center         float64
	sd             float64
	driftPerDay    float64
	progressPerDay float64
	min            float64
	max            float64
}

// metricSpecs holds generation parameters per metric identifier.
var metricSpecs = map[string]metricSpec{
	"FLY10_TIME": {
		units:          "s",
		lowerIsBetter:  true,
		center:         1.22,
		sd:             0.06,
		driftPerDay:    -0.0004,
		progressPerDay: -0.0012,
		min:            1.00,
		max:            1.70,
	},
	"VERTICAL_JUMP": {
		units:          "in",
		lowerIsBetter:  false,
		center:         23.5,
		sd:             2.0,
		driftPerDay:    0.006,
		progressPerDay: 0.12,
		min:            12.0,
		max:            32.0,
	},
	"AGILITY_505": {
		units:          "s",
		lowerIsBetter:  true,
		center:         2.55,
		sd:             0.07,
		driftPerDay:    -0.0005,
		progressPerDay: -0.0016,
		min:            2.1,
		max:            3.5,
	},
	"RSI": {
		units:          "",
		lowerIsBetter:  false,
		center:         2.4,
		sd:             0.25,
		driftPerDay:    0.001,
		progressPerDay: 0.02,
		min:            1.0,
		max:            4.5,
	},
	"T_TEST": {
		units:          "s",
		lowerIsBetter:  true,
		center:         9.8,
		sd:             0.4,
		driftPerDay:    -0.0008,
		progressPerDay: -0.0025,
		min:            7.5,
		max:            13.5,
	},
}

// metricOrder keeps generation deterministic regardless of map iteration.
var metricOrder = []string{"FLY10_TIME", "VERTICAL_JUMP", "AGILITY_505", "RSI", "T_TEST"}

// Age boundary constants for bracket determination.
const (
	ageMiddleSchoolMax = 14
	ageYoungHSMax      = 16
	ageOlderHSMax      = 18
	ageMinValid        = 0
	ageMaxValid        = 100
)

// Age bracket multipliers per metric, with college_plus as the 1.00
// baseline, tuned using normative ranges.
var ageBrackets = map[string]map[string]float64{
	"middle_school": {
		"FLY10_TIME":    1.15,
		"VERTICAL_JUMP": 0.65,
		"AGILITY_505":   1.12,
		"RSI":           0.60,
		"T_TEST":        1.14,
	},
	"young_hs": {
		"FLY10_TIME":    1.10,
		"VERTICAL_JUMP": 0.75,
		"AGILITY_505":   1.07,
		"RSI":           0.72,
		"T_TEST":        1.08,
	},
	"older_hs": {
		"FLY10_TIME":    1.06,
		"VERTICAL_JUMP": 0.85,
		"AGILITY_505":   1.04,
		"RSI":           0.82,
		"T_TEST":        1.05,
	},
	"college_plus": {
		"FLY10_TIME":    1.00,
		"VERTICAL_JUMP": 1.00,
		"AGILITY_505":   1.00,
		"RSI":           1.00,
		"T_TEST":        1.00,
	},
}

// Gender-specific multipliers applied to the baseline center. Timed
// metrics invert, so a slower cohort gets a multiplier above one.
var genderAdjustments = map[string]map[string]float64{
	"FLY10_TIME":    {"Male": 1.00, "Female": 1.08},
	"VERTICAL_JUMP": {"Male": 1.00, "Female": 0.75},
	"AGILITY_505":   {"Male": 1.00, "Female": 1.05},
	"RSI":           {"Male": 1.00, "Female": 0.85},
	"T_TEST":        {"Male": 1.00, "Female": 1.08},
}

// ageBracket maps an age in years to a performance bracket. Unknown or
// unrealistic ages fall back to the adult baseline.
func ageBracket(age int) string {
	switch {
	case age < ageMinValid || age > ageMaxValid:
		return "college_plus"
	case age < ageMiddleSchoolMax:
		return "middle_school"
	case age < ageYoungHSMax:
		return "young_hs"
	case age < ageOlderHSMax:
		return "older_hs"
	default:
		return "college_plus"
	}
}

// adjustedCenter applies age and gender multipliers to the baseline center.
func adjustedCenter(metric string, spec metricSpec, age int, gender string) float64 {
	center := spec.center
	if mult, ok := ageBrackets[ageBracket(age)][metric]; ok {
		center *= mult
	}
	if mult, ok := genderAdjustments[metric][gender]; ok {
		center *= mult
	}
	return center
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
