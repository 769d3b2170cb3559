package geminiservice

import (
	"fmt"
	"strings"

	"LifestyleAdvisor/internal/lifestyle"
)

/*
AdvisorPromptTemplate asks the model to act as a health advisor. It also asks
for a 0-100 score; that score is informational only and is never read back,
the score shown to the user is computed locally.
*/
const AdvisorPromptTemplate = `As a professional health and lifestyle advisor, analyze the following user profile and provide comprehensive recommendations:

User Profile:
- Age: %d
- Diet Type: %s
- Meals per Day: %d
- Water Intake: %d glasses/day
- Sleep: %d hours/night, Quality: %s
- Exercise: %s, Types: %s
- Stress Level: %s
- Meditation: %s
- Smoking: %s
- Alcohol: %s
- Health Goals: %s

Please provide:
1. A lifestyle health score (0-100)
2. Detailed recommendations in these categories:
   - Diet & Nutrition (specific meal suggestions, timing, portions)
   - Hydration (optimal intake, timing)
   - Sleep Optimization (sleep hygiene tips)
   - Exercise Plan (specific activities, duration, frequency)
   - Stress Management (practical techniques)
   - Habit Modifications (lifestyle changes)
3. A personalized action plan with 3-5 immediate steps
4. Potential health risks to watch for based on current lifestyle

Format the response as structured sections with clear headings.`

// BuildAdvisorPrompt renders p into AdvisorPromptTemplate.
func BuildAdvisorPrompt(p lifestyle.UserProfile) string {
	exerciseTypes := "None"
	if len(p.ExerciseTypes) > 0 {
		exerciseTypes = strings.Join(p.ExerciseTypes, ", ")
	}
	goals := strings.TrimSpace(p.HealthGoals)
	if goals == "" {
		goals = "General wellness"
	}

	return fmt.Sprintf(AdvisorPromptTemplate,
		p.Age,
		p.DietType,
		p.MealsPerDay,
		p.WaterIntake,
		p.SleepHours, p.SleepQuality,
		p.ExerciseFrequency, exerciseTypes,
		p.StressLevel,
		p.Meditation,
		p.Smoking,
		p.Alcohol,
		goals,
	)
}
