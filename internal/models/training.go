package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan states
const (
	PlanActive   = "active"
	PlanInactive = "inactive"
)

// TrainingPlan is a trainer-authored offering with a weekly schedule.
type TrainingPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Type        string    `gorm:"not null;index" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Difficulty  int       `gorm:"not null" json:"difficulty"`
	State       string    `gorm:"not null;default:'active'" json:"state"`
	TrainerID   uint      `gorm:"not null;index" json:"trainerId"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Days        Weekdays  `gorm:"not null" json:"days"`
	Start       string    `gorm:"column:start_time;size:5;not null" json:"start"`
	End         string    `gorm:"column:end_time;size:5;not null" json:"end"`
}

func (TrainingPlan) TableName() string {
	return "training_plans"
}

// UserTraining is one athlete session logged against a plan.
type UserTraining struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UserID         uint      `gorm:"not null;index:idx_user_trainings_user_date,priority:1" json:"userId"`
	TrainingPlanID uint      `gorm:"not null;index" json:"trainingPlanId"`
	Distance       float64   `gorm:"not null" json:"distance"`
	Calories       float64   `gorm:"not null" json:"calories"`
	Steps          int64     `gorm:"not null" json:"steps"`
	Duration       string    `gorm:"size:16;not null" json:"duration"`
	Date           time.Time `gorm:"column:session_date;not null;index:idx_user_trainings_user_date,priority:2" json:"date"`
}

func (UserTraining) TableName() string {
	return "user_trainings"
}

// Review is a single athlete's score for a plan.
type Review struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	CreatedAt      time.Time `json:"-"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_reviews_user_plan,priority:1" json:"userId"`
	TrainingPlanID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_plan,priority:2;index" json:"trainingPlanId"`
	Score          int       `gorm:"not null" json:"score"`
	Comment        string    `gorm:"type:text" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}

// FavoriteTrainingPlan marks a plan as favorite for a user.
type FavoriteTrainingPlan struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	CreatedAt      time.Time `json:"-"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_favorites_user_plan,priority:1" json:"userId"`
	TrainingPlanID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_plan,priority:2" json:"trainingPlanId"`
}

func (FavoriteTrainingPlan) TableName() string {
	return "favorite_training_plans"
}

// Goal types
const (
	GoalCalories = "Calorias"
	GoalSteps    = "Pasos"
	GoalDistance = "Distancia"
)

// Goal is an athlete-defined target.
type Goal struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	AthleteID    uint           `gorm:"not null;index" json:"athleteId"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Type         string         `gorm:"not null" json:"type"`
	Metric       float64        `gorm:"not null" json:"metric"`
	Achieved     bool           `gorm:"not null;default:false" json:"achieved"`
	LastAchieved *time.Time     `json:"lastAchieved"`
}

func (Goal) TableName() string {
	return "goals"
}
