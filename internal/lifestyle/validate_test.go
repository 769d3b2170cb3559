package lifestyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AcceptsDefaults(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, NewValidator().Validate(&p))
}

func TestValidator_AcceptsBoundaries(t *testing.T) {
	p := DefaultProfile()
	p.Age = 15
	p.WaterIntake = 0
	p.SleepHours = 12
	p.MealsPerDay = 6
	p.ExerciseTypes = []string{"Yoga", "Swimming"}
	p.HealthGoals = strings.Repeat("x", 500)
	assert.NoError(t, NewValidator().Validate(&p))
}

func TestValidator_RejectsOutOfRange(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		field  string
		modify func(p *UserProfile)
	}{
		{"age too low", "age", func(p *UserProfile) { p.Age = 14 }},
		{"age too high", "age", func(p *UserProfile) { p.Age = 101 }},
		{"no meals", "meals_per_day", func(p *UserProfile) { p.MealsPerDay = 0 }},
		{"too much water", "water_intake", func(p *UserProfile) { p.WaterIntake = 16 }},
		{"too little sleep", "sleep_hours", func(p *UserProfile) { p.SleepHours = 2 }},
		{"unknown diet", "diet_type", func(p *UserProfile) { p.DietType = "Carnivore" }},
		{"unknown quality", "sleep_quality", func(p *UserProfile) { p.SleepQuality = "Great" }},
		{"empty frequency", "exercise_frequency", func(p *UserProfile) { p.ExerciseFrequency = "" }},
		{"unknown exercise", "exercise_types", func(p *UserProfile) { p.ExerciseTypes = []string{"Yoga", "Chess"} }},
		{"unknown stress", "stress_level", func(p *UserProfile) { p.StressLevel = "None" }},
		{"unknown meditation", "meditation", func(p *UserProfile) { p.Meditation = "Yes" }},
		{"unknown smoking", "smoking", func(p *UserProfile) { p.Smoking = "Vaping" }},
		{"unknown alcohol", "alcohol", func(p *UserProfile) { p.Alcohol = "Occasional" }},
		{"goals too long", "health_goals", func(p *UserProfile) { p.HealthGoals = strings.Repeat("x", 501) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.modify(&p)
			err := v.Validate(&p)
			require.Error(t, err)

			fields := FieldErrors(err)
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestFieldErrors_Messages(t *testing.T) {
	p := DefaultProfile()
	p.Age = 5
	p.Alcohol = "Sometimes"

	fields := FieldErrors(NewValidator().Validate(&p))
	assert.Equal(t, "Age must be between 15 and 100", fields["age"])
	assert.True(t, strings.HasPrefix(fields["alcohol"], "Alcohol Consumption must be one of: None"))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestUserProfile_HasExerciseType(t *testing.T) {
	p := UserProfile{ExerciseTypes: []string{"Cardio"}}
	assert.True(t, p.HasExerciseType("Cardio"))
	assert.False(t, p.HasExerciseType("Yoga"))
}
