package lifestyle

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks bound form structs against the form schema. It satisfies
// echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the "field" tag, whose parameter names the schema
// field the value must fit.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("field", func(fl validator.FieldLevel) bool {
		return schema.accepts(fl.Param(), fl.Field())
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors maps each rejected form field to a user-facing message.
// It returns nil when err carries no field-level detail.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe.Field())
	}
	return out
}

func describe(name string) string {
	s := schema
	for _, f := range []IntField{s.Age, s.MealsPerDay, s.WaterIntake, s.SleepHours} {
		if f.Name == name {
			return fmt.Sprintf("%s must be between %d and %d", f.Label, f.Min, f.Max)
		}
	}
	for _, f := range []ChoiceField{s.DietType, s.SleepQuality, s.ExerciseFrequency, s.StressLevel, s.Meditation, s.Smoking, s.Alcohol} {
		if f.Name == name {
			return fmt.Sprintf("%s must be one of: %s", f.Label, strings.Join(f.Options, ", "))
		}
	}
	switch name {
	case s.ExerciseTypes.Name:
		return fmt.Sprintf("%s must be chosen from: %s", s.ExerciseTypes.Label, strings.Join(s.ExerciseTypes.Options, ", "))
	case s.HealthGoals.Name:
		return fmt.Sprintf("Health goals must be at most %d characters", s.HealthGoals.MaxLength)
	}
	return "invalid value"
}
