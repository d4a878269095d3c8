package remote

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fitcomp/fitcomp/internal/workouts"
)

// Duration holds a workout duration in seconds. The product API sends it
// either as a "HH:MM:SS" string or as a plain number of seconds.
type Duration float64

func (d Duration) Seconds() float64 {
	return float64(d)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*d = Duration(asNumber)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("duration is neither number nor string: %s", data)
	}

	if seconds, err := strconv.ParseFloat(asString, 64); err == nil {
		*d = Duration(seconds)
		return nil
	}

	parts := strings.Split(asString, ":")
	if len(parts) != 3 {
		return fmt.Errorf("unsupported duration format: %q", asString)
	}

	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("parse duration hours %q: %w", asString, err)
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("parse duration minutes %q: %w", asString, err)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return fmt.Errorf("parse duration seconds %q: %w", asString, err)
	}

	*d = Duration(hours*3600 + minutes*60 + seconds)
	return nil
}

type workoutPayload struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user"`
	SportType     string    `json:"sport_type"`
	StartDatetime time.Time `json:"start_datetime"`
	Duration      Duration  `json:"duration"`
	Steps         *float64  `json:"steps"`
	Kcal          *float64  `json:"kcal"`
	DistanceKm    *float64  `json:"distance"`
	StravaID      *int64    `json:"strava_id"`
}

func (p workoutPayload) toWorkout() workouts.Workout {
	return workouts.Workout{
		ID:              p.ID,
		UserID:          p.UserID,
		SportType:       p.SportType,
		StartDatetime:   p.StartDatetime,
		DurationSeconds: p.Duration.Seconds(),
		Steps:           p.Steps,
		Kcal:            p.Kcal,
		DistanceKm:      p.DistanceKm,
		StravaID:        p.StravaID,
	}
}

// ScalingFactors is the payload for persisting equalization results.
type ScalingFactors struct {
	ScalingKcal     float64 `json:"scaling_kcal"`
	ScalingDistance float64 `json:"scaling_distance"`
}
