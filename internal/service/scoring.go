package service

import (
	"math"

	"github.com/limbo/vital/pkg/entity"
)

const baseScore = 50

// Scores derived from a questionnaire, each within 0..100.
type Scores struct {
	Physical int
	Mental   int
	Overall  int
}

func ScoreQuestionnaire(q *entity.Questionnaire) Scores {
	physical := baseScore
	if q.SleepDuration != nil {
		sleep := *q.SleepDuration
		switch {
		case sleep >= 7 && sleep <= 9:
			physical += 10
		case sleep >= 6:
			physical += 5
		}
	}
	switch q.SleepQuality {
	case "excellent":
		physical += 10
	case "good":
		physical += 7
	case "fair":
		physical += 3
	}
	switch q.ActivityFreq {
	case "active":
		physical += 15
	case "moderate":
		physical += 10
	case "light":
		physical += 5
	}
	switch q.Diet {
	case "excellent":
		physical += 10
	case "balanced":
		physical += 7
	case "fair":
		physical += 3
	}
	if q.WaterIntake != nil {
		switch water := *q.WaterIntake; {
		case water >= 8:
			physical += 5
		case water >= 5:
			physical += 2
		}
	}

	mental := baseScore
	if q.StressLevel != nil {
		mental += (10 - *q.StressLevel) * 3
	}
	switch q.Mood {
	case "positive":
		mental += 15
	case "stable":
		mental += 10
	case "variable":
		mental += 5
	}
	if q.ScreenTime != nil {
		switch screen := *q.ScreenTime; {
		case screen <= 2:
			mental += 10
		case screen <= 4:
			mental += 5
		case screen > 6:
			mental -= 5
		}
	}

	physical = clampScore(physical)
	mental = clampScore(mental)
	return Scores{
		Physical: physical,
		Mental:   mental,
		Overall:  int(math.Round(float64(physical+mental) / 2)),
	}
}

// BMI from height in cm and weight in kg, rounded to an integer.
func BMI(heightCm, weightKg int) int {
	meters := float64(heightCm) / 100
	return int(math.Round(float64(weightKg) / (meters * meters)))
}

func clampScore(v int) int {
	return min(100, max(0, v))
}
