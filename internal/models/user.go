package models

import (
	"time"
)

// User roles
const (
	RoleAthlete = "athlete"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"not null;default:'athlete';index" json:"role"`
	Blocked      bool      `gorm:"not null;default:false" json:"blocked"`
	PasswordHash string    `json:"-"`
	PushToken    string    `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserMetadata holds the optional profile data of a user.
type UserMetadata struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	Location  string    `json:"location"`
	Interests string    `gorm:"type:text" json:"interests"`
	BirthDate time.Time `json:"birthDate"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
}

func (UserMetadata) TableName() string {
	return "user_metadata"
}

// Notification is a message stored for a user and handed off for push delivery.
type Notification struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	SenderID *uint     `gorm:"index" json:"-"`
	Sender   *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Title    string    `gorm:"not null" json:"title"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	Date     time.Time `gorm:"column:sent_at;not null" json:"date"`
}

func (Notification) TableName() string {
	return "notifications"
}

// All lists every persisted model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserMetadata{},
		&Notification{},
		&TrainingPlan{},
		&UserTraining{},
		&Review{},
		&FavoriteTrainingPlan{},
		&Goal{},
	}
}
