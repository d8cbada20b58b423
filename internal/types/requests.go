package types

import (
	"encoding/json"

	"github.com/trainhub/fitness-platform/backend/internal/models"
)

// Pointer fields distinguish "absent" from a zero value: presence rules are
// checked before range rules.

type CreatePlanRequest struct {
	Title       *string         `json:"title" validate:"required"`
	Type        *string         `json:"type" validate:"required"`
	Description *string         `json:"description" validate:"required"`
	Difficulty  *int            `json:"difficulty" validate:"required"`
	State       string          `json:"state"`
	TrainerID   *uint           `json:"trainerId" validate:"required"`
	Location    string          `json:"location"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Days        models.Weekdays `json:"days" validate:"required"`
	Start       *string         `json:"start" validate:"required"`
	End         *string         `json:"end" validate:"required"`
}

// DaysQuery filters plans by weekday; days may hold several comma separated names.
type DaysQuery struct {
	Days models.Weekdays `json:"days"`
}

// HoursQuery filters plans by a time-of-day window.
type HoursQuery struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RecordSessionRequest struct {
	Distance *float64       `json:"distance"`
	Calories *float64       `json:"calories"`
	Steps    *int64         `json:"steps"`
	Duration json.RawMessage `json:"duration"`
	Date     json.RawMessage `json:"date"`
}

// IntervalRequest bounds a date range; each bound is an RFC3339 string or
// epoch milliseconds.
type IntervalRequest struct {
	Start json.RawMessage `json:"start"`
	End   json.RawMessage `json:"end"`
}

type SubmitReviewRequest struct {
	Score   *int   `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type GoalRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Type        *string  `json:"type" validate:"required,oneof=Calorias Pasos Distancia"`
	Metric      *float64 `json:"metric" validate:"required,gt=0"`
}

type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
	Role  string  `json:"role"`
}

type CreateAdminRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password string  `json:"password"`
}

type MetadataRequest struct {
	Location  *string         `json:"location" validate:"required"`
	Interests *string         `json:"interests" validate:"required"`
	BirthDate json.RawMessage `json:"birthDate"`
	Height    *float64        `json:"height" validate:"required"`
	Weight    *float64        `json:"weight" validate:"required"`
}

// ChangeNameRequest keeps name raw so a non-string value can be reported.
type ChangeNameRequest struct {
	Name json.RawMessage `json:"name"`
}

type BlockRequest struct {
	UserID *uint `json:"userId" validate:"required"`
}

type PushTokenRequest struct {
	Token *string `json:"token" validate:"required"`
}

type NotificationRequest struct {
	Title      *string `json:"title" validate:"required"`
	Body       *string `json:"body" validate:"required"`
	FromUserID *uint   `json:"fromUserId"`
}
