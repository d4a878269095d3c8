package equalize

import "math"

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Defaults applied when a biometric input is missing. They describe the
// reference participant whose goals need no scaling.
const (
	DefaultAgeYears = 35
	DefaultHeightCm = 180
	DefaultWeightKg = 75
)

const (
	// activityMultiplier turns resting BMR into an everyday energy estimate.
	activityMultiplier = 1.2
	// referenceDailyKcal is the baseline daily effort all participants are
	// scaled against.
	referenceDailyKcal = 2046
	// referenceStepLengthM is the baseline running stride.
	referenceStepLengthM = 1.17
)

// Biometrics are the inputs of the factor calculation. They are entered in a
// transient local form and are never persisted or transmitted, only the two
// resulting factors are.
type Biometrics struct {
	Gender   Gender   `json:"gender"`
	AgeYears *float64 `json:"age"`
	HeightCm *float64 `json:"height"`
	WeightKg *float64 `json:"weight"`
}

// Factors are the displayed calculation results. The two scaling factors are
// percentage-like (100 = reference participant, no scaling).
type Factors struct {
	BMRKcal         int     `json:"bmr_kcal"`
	ScalingKcal     float64 `json:"scaling_kcal"`
	StepLengthM     float64 `json:"step_length"`
	ScalingDistance float64 `json:"scaling_distance"`
}

// Ratios is the persistence form of the two factors: plain multipliers
// (1.0 = no scaling) as the backend stores them.
type Ratios struct {
	ScalingKcal     float64 `json:"scaling_kcal"`
	ScalingDistance float64 `json:"scaling_distance"`
}

// Compute estimates the basal metabolic rate (Mifflin-St Jeor) and running
// step length for the given biometrics and derives the two equalizing
// factors from them. Pure, and total: missing inputs fall back to the
// reference defaults, an unknown gender uses the male profile.
func Compute(b Biometrics) Factors {
	age := valueOr(b.AgeYears, DefaultAgeYears)
	height := valueOr(b.HeightCm, DefaultHeightCm)
	weight := valueOr(b.WeightKg, DefaultWeightKg)

	var bmr, stepLength float64
	if b.Gender == Female {
		bmr = (10*weight + 6.25*height - 5*age - 161) * activityMultiplier
		stepLength = 0.60 * height / 100
	} else {
		bmr = (10*weight + 6.25*height - 5*age + 5) * activityMultiplier
		stepLength = 0.65 * height / 100
	}

	return Factors{
		BMRKcal:         int(math.Round(bmr)),
		ScalingKcal:     math.Round(bmr/referenceDailyKcal*100*100) / 100,
		StepLengthM:     math.Round(stepLength*100) / 100,
		ScalingDistance: math.Round(stepLength/referenceStepLengthM*100*10) / 10,
	}
}

// Ratios converts the displayed percent factors into the persisted
// multiplier form (percent / 100).
func (f Factors) Ratios() Ratios {
	return Ratios{
		ScalingKcal:     math.Round(f.ScalingKcal*100) / 10000,
		ScalingDistance: math.Round(f.ScalingDistance*100) / 10000,
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
