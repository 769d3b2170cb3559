package lifestyle

// Level is the presentation band for a score.
type Level struct {
	Name  string
	Color string
	Badge string
}

var (
	LevelExcellent        = Level{Name: "Excellent", Color: "#00C853", Badge: "🌟"}
	LevelGood             = Level{Name: "Good", Color: "#64DD17", Badge: "✅"}
	LevelFair             = Level{Name: "Fair", Color: "#FFD600", Badge: "⚠️"}
	LevelNeedsImprovement = Level{Name: "Needs Improvement", Color: "#FF6D00", Badge: "🔔"}
)

const (
	maxScore       = 100
	hydrationCap   = 40
	sleepCap       = 35
	pointsPerUnit  = 5
	sleepBonus     = 10
	exerciseBonus  = 15
	stressBonus    = 10
	nonSmokerBonus = 10
	alcoholBonus   = 5
)

// Score computes the 0-100 lifestyle score. It is a pure function of p.
func Score(p UserProfile) int {
	score := min(p.WaterIntake*pointsPerUnit, hydrationCap)
	score += min(p.SleepHours*pointsPerUnit, sleepCap)

	if p.SleepQuality == SleepQualityGood || p.SleepQuality == SleepQualityExcellent {
		score += sleepBonus
	}
	switch p.ExerciseFrequency {
	case ExerciseThreeToFour, ExerciseFiveToSix, ExerciseDaily:
		score += exerciseBonus
	}
	if p.StressLevel == StressVeryLow || p.StressLevel == StressLow {
		score += stressBonus
	}
	if p.Smoking == NonSmoker {
		score += nonSmokerBonus
	}
	if p.Alcohol == AlcoholNone || p.Alcohol == AlcoholOccasional {
		score += alcoholBonus
	}

	return min(score, maxScore)
}

// LevelFor bands a score for display. Boundaries are inclusive at 80, 60 and 40.
func LevelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelNeedsImprovement
	}
}
