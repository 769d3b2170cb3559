/*
Package lifestyle holds the self-reported lifestyle profile, the typed form
schema that describes each answer, and the wellness score derived from it.
*/
package lifestyle

// UserProfile is one submission of the lifestyle form.
type UserProfile struct {
	Age               int      `json:"age" form:"age" validate:"field=age"`
	DietType          string   `json:"diet_type" form:"diet_type" validate:"field=diet_type"`
	MealsPerDay       int      `json:"meals_per_day" form:"meals_per_day" validate:"field=meals_per_day"`
	WaterIntake       int      `json:"water_intake" form:"water_intake" validate:"field=water_intake"`
	SleepHours        int      `json:"sleep_hours" form:"sleep_hours" validate:"field=sleep_hours"`
	SleepQuality      string   `json:"sleep_quality" form:"sleep_quality" validate:"field=sleep_quality"`
	ExerciseFrequency string   `json:"exercise_frequency" form:"exercise_frequency" validate:"field=exercise_frequency"`
	ExerciseTypes     []string `json:"exercise_types" form:"exercise_types" validate:"field=exercise_types"`
	StressLevel       string   `json:"stress_level" form:"stress_level" validate:"field=stress_level"`
	Meditation        string   `json:"meditation" form:"meditation" validate:"field=meditation"`
	Smoking           string   `json:"smoking" form:"smoking" validate:"field=smoking"`
	Alcohol           string   `json:"alcohol" form:"alcohol" validate:"field=alcohol"`
	HealthGoals       string   `json:"health_goals" form:"health_goals" validate:"field=health_goals"`
}

// Option values referenced by the score rules.
const (
	SleepQualityGood      = "Good"
	SleepQualityExcellent = "Excellent"

	ExerciseThreeToFour = "3-4 times/week"
	ExerciseFiveToSix   = "5-6 times/week"
	ExerciseDaily       = "Daily"

	StressVeryLow = "Very Low"
	StressLow     = "Low"

	NonSmoker = "Non-smoker"

	AlcoholNone       = "None"
	AlcoholOccasional = "Occasional (1-2/week)"
)

// DefaultProfile returns the answers the form shows before the user touches it.
func DefaultProfile() UserProfile {
	s := Schema()
	return UserProfile{
		Age:               s.Age.Default,
		DietType:          s.DietType.Default,
		MealsPerDay:       s.MealsPerDay.Default,
		WaterIntake:       s.WaterIntake.Default,
		SleepHours:        s.SleepHours.Default,
		SleepQuality:      s.SleepQuality.Default,
		ExerciseFrequency: s.ExerciseFrequency.Default,
		ExerciseTypes:     []string{},
		StressLevel:       s.StressLevel.Default,
		Meditation:        s.Meditation.Default,
		Smoking:           s.Smoking.Default,
		Alcohol:           s.Alcohol.Default,
		HealthGoals:       "",
	}
}

// HasExerciseType reports whether t was selected. Used by the form template.
func (p UserProfile) HasExerciseType(t string) bool {
	for _, v := range p.ExerciseTypes {
		if v == t {
			return true
		}
	}
	return false
}
