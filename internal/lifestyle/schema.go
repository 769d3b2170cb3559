package lifestyle

import (
	"reflect"
	"unicode/utf8"
)

// IntField describes a bounded integer answer rendered as a slider or number input.
type IntField struct {
	Name    string
	Label   string
	Help    string
	Unit    string
	Min     int
	Max     int
	Default int
}

// ChoiceField describes a single answer picked from a fixed option set.
// Ordered choices are rendered as a scale, the rest as a select or radio group.
type ChoiceField struct {
	Name    string
	Label   string
	Help    string
	Options []string
	Default string
	Ordered bool
	Radio   bool
}

// MultiChoiceField describes a possibly empty subset of a fixed catalog.
type MultiChoiceField struct {
	Name    string
	Label   string
	Help    string
	Options []string
}

// TextField describes an optional free-text answer.
type TextField struct {
	Name        string
	Label       string
	Help        string
	Placeholder string
	MaxLength   int
}

// FormSchema enumerates every field of the lifestyle form.
type FormSchema struct {
	Age               IntField
	DietType          ChoiceField
	MealsPerDay       IntField
	WaterIntake       IntField
	SleepHours        IntField
	SleepQuality      ChoiceField
	ExerciseFrequency ChoiceField
	ExerciseTypes     MultiChoiceField
	StressLevel       ChoiceField
	Meditation        ChoiceField
	Smoking           ChoiceField
	Alcohol           ChoiceField
	HealthGoals       TextField
}

var schema = FormSchema{
	Age: IntField{
		Name: "age", Label: "Age", Help: "Your current age",
		Min: 15, Max: 100, Default: 30,
	},
	DietType: ChoiceField{
		Name: "diet_type", Label: "Primary Diet Type", Help: "Select your primary dietary preference",
		Options: []string{"Omnivore", "Vegetarian", "Vegan", "Pescatarian", "Keto", "Paleo", "Mediterranean"},
		Default: "Omnivore",
	},
	MealsPerDay: IntField{
		Name: "meals_per_day", Label: "Meals per Day", Help: "How many meals do you typically eat?",
		Min: 1, Max: 6, Default: 3,
	},
	WaterIntake: IntField{
		Name: "water_intake", Label: "Water Intake", Help: "Recommended: 8-10 glasses", Unit: "glasses/day",
		Min: 0, Max: 15, Default: 8,
	},
	SleepHours: IntField{
		Name: "sleep_hours", Label: "Average Sleep", Help: "Recommended: 7-9 hours", Unit: "hours/night",
		Min: 3, Max: 12, Default: 7,
	},
	SleepQuality: ChoiceField{
		Name: "sleep_quality", Label: "Sleep Quality", Help: "How would you rate your sleep quality?",
		Options: []string{"Very Poor", "Poor", "Fair", SleepQualityGood, SleepQualityExcellent},
		Default: "Very Poor", Ordered: true,
	},
	ExerciseFrequency: ChoiceField{
		Name: "exercise_frequency", Label: "Exercise Frequency", Help: "How often do you exercise?",
		Options: []string{"Sedentary", "1-2 times/week", ExerciseThreeToFour, ExerciseFiveToSix, ExerciseDaily},
		Default: "Sedentary",
	},
	ExerciseTypes: MultiChoiceField{
		Name: "exercise_types", Label: "Exercise Types", Help: "Select all that apply",
		Options: []string{"Cardio", "Strength Training", "Yoga", "Sports", "Walking", "Cycling", "Swimming"},
	},
	StressLevel: ChoiceField{
		Name: "stress_level", Label: "Stress Level", Help: "How stressed do you feel on average?",
		Options: []string{StressVeryLow, StressLow, "Moderate", "High", "Very High"},
		Default: StressVeryLow, Ordered: true,
	},
	Meditation: ChoiceField{
		Name: "meditation", Label: "Do you meditate?", Help: "Meditation can help reduce stress",
		Options: []string{"Yes, regularly", "Sometimes", "No"},
		Default: "Yes, regularly", Radio: true,
	},
	Smoking: ChoiceField{
		Name: "smoking", Label: "Smoking Status", Help: "Your smoking habits",
		Options: []string{NonSmoker, "Occasional", "Regular"},
		Default: NonSmoker, Radio: true,
	},
	Alcohol: ChoiceField{
		Name: "alcohol", Label: "Alcohol Consumption", Help: "How often do you consume alcohol?",
		Options: []string{AlcoholNone, AlcoholOccasional, "Moderate (3-5/week)", "Regular (daily)"},
		Default: AlcoholNone,
	},
	HealthGoals: TextField{
		Name: "health_goals", Label: "Health Goals (optional)", Help: "What are your main health objectives?",
		Placeholder: "e.g., Weight loss, Muscle gain, Better energy...",
		MaxLength:   500,
	},
}

// Schema returns the lifestyle form description.
func Schema() FormSchema {
	return schema
}

// Contains reports whether v lies within the field's range.
func (f IntField) Contains(v int) bool {
	return v >= f.Min && v <= f.Max
}

// Contains reports whether v is one of the field's options.
func (f ChoiceField) Contains(v string) bool {
	return containsString(f.Options, v)
}

// ContainsAll reports whether every value is in the catalog.
func (f MultiChoiceField) ContainsAll(vs []string) bool {
	for _, v := range vs {
		if !containsString(f.Options, v) {
			return false
		}
	}
	return true
}

// Fits reports whether v respects the length limit.
func (f TextField) Fits(v string) bool {
	return f.MaxLength <= 0 || utf8.RuneCountInString(v) <= f.MaxLength
}

// accepts checks a bound form value against the named field.
func (s FormSchema) accepts(name string, v reflect.Value) bool {
	for _, f := range []IntField{s.Age, s.MealsPerDay, s.WaterIntake, s.SleepHours} {
		if f.Name == name {
			return v.CanInt() && f.Contains(int(v.Int()))
		}
	}
	for _, f := range []ChoiceField{s.DietType, s.SleepQuality, s.ExerciseFrequency, s.StressLevel, s.Meditation, s.Smoking, s.Alcohol} {
		if f.Name == name {
			return v.Kind() == reflect.String && f.Contains(v.String())
		}
	}
	switch name {
	case s.ExerciseTypes.Name:
		if v.Kind() != reflect.Slice {
			return false
		}
		vals, ok := v.Interface().([]string)
		return ok && s.ExerciseTypes.ContainsAll(vals)
	case s.HealthGoals.Name:
		return v.Kind() == reflect.String && s.HealthGoals.Fits(v.String())
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
