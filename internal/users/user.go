package users

// User is the profile subset the aggregation core needs: the persisted
// equalizing factors and the optional personal weekly goals. Biometric
// inputs never appear here, the backend only ever sees the two factors.
type User struct {
	ID              int     `json:"id"`
	Username        string  `json:"username"`
	FirstName       string  `json:"first_name"`
	Gender          string  `json:"gender"`
	ScalingKcal     float64 `json:"scaling_kcal"`
	ScalingDistance float64 `json:"scaling_distance"`

	// personal 7-day rolling goals; nil means the goal is not configured
	// (a configured goal of 0 is valid and displayed)
	GoalActiveDays     *float64 `json:"goal_active_days"`
	GoalWorkoutMinutes *float64 `json:"goal_workout_minutes"`
	GoalDistanceKm     *float64 `json:"goal_distance"`

	MyTeams []int `json:"my_teams"`
}

// ApplyDefaults fills the invariants the wire format cannot express: the
// scaling factors are always positive, with 1.0 meaning "no scaling".
// Called at the deserialization boundary, never inside aggregation logic.
func (u *User) ApplyDefaults() {
	if u.ScalingKcal <= 0 {
		u.ScalingKcal = 1
	}
	if u.ScalingDistance <= 0 {
		u.ScalingDistance = 1
	}
}
