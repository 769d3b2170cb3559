package lifestyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_HealthyProfileIsCapped(t *testing.T) {
	p := DefaultProfile()
	p.WaterIntake = 8
	p.SleepHours = 7
	p.SleepQuality = SleepQualityGood
	p.ExerciseFrequency = ExerciseDaily
	p.StressLevel = StressLow
	p.Smoking = NonSmoker
	p.Alcohol = AlcoholNone

	score := Score(p)
	assert.Equal(t, 100, score)
	assert.Equal(t, LevelExcellent, LevelFor(score))
}

func TestScore_UnhealthyProfile(t *testing.T) {
	p := DefaultProfile()
	p.WaterIntake = 0
	p.SleepHours = 3
	p.SleepQuality = "Very Poor"
	p.ExerciseFrequency = "Sedentary"
	p.StressLevel = "Very High"
	p.Smoking = "Regular"
	p.Alcohol = "Regular (daily)"

	score := Score(p)
	assert.Equal(t, 15, score)
	assert.Equal(t, LevelNeedsImprovement, LevelFor(score))
}

func TestScore_Terms(t *testing.T) {
	base := UserProfile{
		WaterIntake:       0,
		SleepHours:        3,
		SleepQuality:      "Poor",
		ExerciseFrequency: "1-2 times/week",
		StressLevel:       "Moderate",
		Smoking:           "Occasional",
		Alcohol:           "Moderate (3-5/week)",
	}

	tests := []struct {
		name   string
		modify func(p *UserProfile)
		want   int
	}{
		{"baseline", func(p *UserProfile) {}, 15},
		{"water below cap", func(p *UserProfile) { p.WaterIntake = 7 }, 15 + 35},
		{"water at cap", func(p *UserProfile) { p.WaterIntake = 15 }, 15 + 40},
		{"sleep at cap", func(p *UserProfile) { p.SleepHours = 12 }, 35},
		{"excellent sleep", func(p *UserProfile) { p.SleepQuality = SleepQualityExcellent }, 25},
		{"fair sleep earns nothing", func(p *UserProfile) { p.SleepQuality = "Fair" }, 15},
		{"three to four sessions", func(p *UserProfile) { p.ExerciseFrequency = ExerciseThreeToFour }, 30},
		{"five to six sessions", func(p *UserProfile) { p.ExerciseFrequency = ExerciseFiveToSix }, 30},
		{"very low stress", func(p *UserProfile) { p.StressLevel = StressVeryLow }, 25},
		{"non-smoker", func(p *UserProfile) { p.Smoking = NonSmoker }, 25},
		{"occasional drinker", func(p *UserProfile) { p.Alcohol = AlcoholOccasional }, 20},
		{"daily drinker", func(p *UserProfile) { p.Alcohol = "Regular (daily)" }, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.modify(&p)
			assert.Equal(t, tt.want, Score(p))
		})
	}
}

func TestScore_BoundsOverSchema(t *testing.T) {
	s := Schema()
	for water := s.WaterIntake.Min; water <= s.WaterIntake.Max; water++ {
		for sleep := s.SleepHours.Min; sleep <= s.SleepHours.Max; sleep++ {
			for _, quality := range s.SleepQuality.Options {
				for _, freq := range s.ExerciseFrequency.Options {
					p := UserProfile{
						WaterIntake:       water,
						SleepHours:        sleep,
						SleepQuality:      quality,
						ExerciseFrequency: freq,
						StressLevel:       StressLow,
						Smoking:           NonSmoker,
						Alcohol:           AlcoholNone,
					}
					got := Score(p)
					if got < 0 || got > 100 {
						t.Fatalf("score %d out of range for %+v", got, p)
					}
					if again := Score(p); again != got {
						t.Fatalf("score not deterministic: %d then %d", got, again)
					}
				}
			}
		}
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	assert.Equal(t, LevelNeedsImprovement, LevelFor(0))
	assert.Equal(t, LevelNeedsImprovement, LevelFor(39))
	assert.Equal(t, LevelFair, LevelFor(40))
	assert.Equal(t, LevelFair, LevelFor(59))
	assert.Equal(t, LevelGood, LevelFor(60))
	assert.Equal(t, LevelGood, LevelFor(79))
	assert.Equal(t, LevelExcellent, LevelFor(80))
	assert.Equal(t, LevelExcellent, LevelFor(100))
}

func TestLevelFor_Monotonic(t *testing.T) {
	rank := map[string]int{
		LevelNeedsImprovement.Name: 0,
		LevelFair.Name:             1,
		LevelGood.Name:             2,
		LevelExcellent.Name:        3,
	}
	prev := -1
	for score := 0; score <= 100; score++ {
		r, ok := rank[LevelFor(score).Name]
		if !ok {
			t.Fatalf("score %d mapped to unknown level", score)
		}
		if r < prev {
			t.Fatalf("level dropped at score %d", score)
		}
		prev = r
	}
}
