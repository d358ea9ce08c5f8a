package entity

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type TaskType string

const (
	TaskSteps    TaskType = "steps"
	TaskWater    TaskType = "water"
	TaskSleep    TaskType = "sleep"
	TaskExercise TaskType = "exercise"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type ReminderType string

const (
	ReminderMedicine ReminderType = "medicine"
	ReminderDoctor   ReminderType = "doctor"
	ReminderTest     ReminderType = "test"
)

// Questionnaire is the lifestyle snapshot stored as a JSON blob on the user.
type Questionnaire struct {
	SleepDuration *float64 `json:"sleepDuration,omitempty" validate:"omitempty,min=0,max=24"`
	SleepQuality  string   `json:"sleepQuality,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	ActivityFreq  string   `json:"activityFreq,omitempty" validate:"omitempty,oneof=none light moderate active"`
	ExerciseType  string   `json:"exerciseType,omitempty" validate:"omitempty,oneof=cardio strength yoga mixed none"`
	StepsDaily    *int     `json:"stepsDaily,omitempty" validate:"omitempty,min=0,max=100000"`
	Diet          string   `json:"diet,omitempty" validate:"omitempty,oneof=excellent balanced fair poor"`
	WaterIntake   *int     `json:"waterIntake,omitempty" validate:"omitempty,min=0,max=50"`
	ScreenTime    *float64 `json:"screenTime,omitempty" validate:"omitempty,min=0,max=24"`
	StressLevel   *int     `json:"stressLevel,omitempty" validate:"omitempty,min=1,max=10"`
	Mood          string   `json:"mood,omitempty" validate:"omitempty,oneof=low variable stable positive"`
}

type User struct {
	ID                uuid.UUID      `json:"id"`
	WalletAddress     string         `json:"walletAddress"`
	Nonce             string         `json:"-"`
	Name              *string        `json:"name"`
	Age               *int           `json:"age"`
	Gender            *string        `json:"gender"`
	Height            *int           `json:"height"`
	Weight            *int           `json:"weight"`
	BMI               *int           `json:"bmi"`
	Lifestyle         *string        `json:"lifestyle"`
	Allergies         *string        `json:"allergies"`
	PastDiseases      *string        `json:"pastDiseases"`
	CurrentConditions *string        `json:"currentConditions"`
	PhysicalScore     int            `json:"physicalScore"`
	MentalScore       int            `json:"mentalScore"`
	OverallScore      int            `json:"overallScore"`
	Questionnaire     *Questionnaire `json:"questionnaire"`
	Points            int            `json:"points"`
	CurrentStreak     int            `json:"currentStreak"`
	LastTaskDate      *time.Time     `json:"lastTaskDate"`
	ReferralCode      *string        `json:"referralCode"`
	ReferredBy        *string        `json:"referredBy"`
	CreatedAt         time.Time      `json:"createdAt"`
}

type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Date      time.Time `json:"date"`
	Type      TaskType  `json:"type"`
	Target    int       `json:"target"`
	Current   int       `json:"current"`
	Completed bool      `json:"completed"`
}

// TaskTemplate describes one goal of the default daily batch.
type TaskTemplate struct {
	Type   TaskType
	Target int
}

type Symptom struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Description string    `json:"description"`
	Severity    int       `json:"severity"`
	Duration    int       `json:"duration"`
	AIAnalysis  string    `json:"aiAnalysis"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	CreatedAt   time.Time `json:"date"`
}

type Reminder struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	Type      ReminderType `json:"type"`
	Title     string       `json:"title"`
	Datetime  time.Time    `json:"datetime"`
	Dosage    *string      `json:"dosage"`
	Completed bool         `json:"completed"`
}

// Balance is the points report shown to the user.
type Balance struct {
	Points      int  `json:"points"`
	Streak      int  `json:"streak"`
	CanRedeem   bool `json:"canRedeem"`
	RedeemValue int  `json:"redeemValue"`
}

// TaskReward is what a completion transition granted.
type TaskReward struct {
	Points int
	Bonus  int
	Streak int
}

// MarshalJSON renders the task date as a calendar date.
func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return sonic.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(t),
		Date:  t.Date.Format(DateLayout),
	})
}
