package goals

type Metric string

const (
	MetricMinutes  Metric = "min"
	MetricCount    Metric = "num"
	MetricKcal     Metric = "kcal"
	MetricKm       Metric = "km"
	MetricKilojoul Metric = "kj"
)

type Period string

const (
	PeriodDay         Period = "day"
	PeriodWeek        Period = "week"
	PeriodMonth       Period = "month"
	PeriodCompetition Period = "competition"
)

// Goal is a competition-defined activity target. Caps are nullable on the
// wire and stay nullable here: an absent cap means "no cap", never zero.
type Goal struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Metric        Metric   `json:"metric"`
	Period        Period   `json:"period"`
	Target        float64  `json:"goal"`
	MinPerWorkout *float64 `json:"min_per_workout"`
	MaxPerWorkout *float64 `json:"max_per_workout"`
	MinPerDay     *float64 `json:"min_per_day"`
	MaxPerDay     *float64 `json:"max_per_day"`
	MinPerWeek    *float64 `json:"min_per_week"`
	MaxPerWeek    *float64 `json:"max_per_week"`
}

// Scaled is a goal with the user's equalizing factor applied to its target
// and every present cap. The unscaled target is kept for the
// "Equalizing Factor: X% x Y" display.
type Scaled struct {
	Goal
	Factor    float64 `json:"factor"`
	RawTarget float64 `json:"raw_target"`
}

// Normalize applies the user's equalizing factors to a goal. Energy metrics
// (kcal, kj) scale by the effort factor, distance (km) by the distance
// factor, everything else is left untouched. Factors are multipliers
// (1.0 = no scaling); non-positive ones are treated as unset.
func Normalize(g Goal, scalingKcal, scalingDistance float64) Scaled {
	factor := 1.0
	switch g.Metric {
	case MetricKcal, MetricKilojoul:
		factor = scalingKcal
	case MetricKm:
		factor = scalingDistance
	}
	if factor <= 0 {
		factor = 1
	}

	s := Scaled{
		Goal:      g,
		Factor:    factor,
		RawTarget: g.Target,
	}
	s.Target = g.Target * factor
	s.MinPerWorkout = scaleCap(g.MinPerWorkout, factor)
	s.MaxPerWorkout = scaleCap(g.MaxPerWorkout, factor)
	s.MinPerDay = scaleCap(g.MinPerDay, factor)
	s.MaxPerDay = scaleCap(g.MaxPerDay, factor)
	s.MinPerWeek = scaleCap(g.MinPerWeek, factor)
	s.MaxPerWeek = scaleCap(g.MaxPerWeek, factor)
	return s
}

// NormalizeAll scales a whole goal list with the same factors.
func NormalizeAll(gs []Goal, scalingKcal, scalingDistance float64) []Scaled {
	scaled := make([]Scaled, 0, len(gs))
	for _, g := range gs {
		scaled = append(scaled, Normalize(g, scalingKcal, scalingDistance))
	}
	return scaled
}

func scaleCap(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * factor
	return &scaled
}
