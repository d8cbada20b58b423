package service

import "github.com/trainhub/fitness-platform/backend/internal/apperrors"

// Training plans
var (
	ErrPlanMissingFields = apperrors.InvalidArgument("plan_missing_fields",
		"Missing required fields (title, type, description, difficulty, trainerId, days, start or end)")
	ErrPlanInvalidClock  = apperrors.InvalidArgument("plan_invalid_clock", "Start and end must be in format HH:MM")
	ErrPlanInvalidWindow = apperrors.InvalidArgument("plan_invalid_window", "Start time must be before end time")
	ErrPlanInvalidDays   = apperrors.InvalidArgument("plan_invalid_days", "Days must be weekday names")
	ErrPlanInvalidState  = apperrors.InvalidArgument("plan_invalid_state", "State must be active or inactive")
)

// Training sessions
var (
	ErrSessionMissingFields = apperrors.InvalidArgument("session_missing_fields",
		"Missing required fields (distance, duration, steps, calories or date)")
	ErrSessionNotPositive     = apperrors.InvalidArgument("session_not_positive", "Distance, duration, steps and calories must be positive")
	ErrSessionInvalidDuration = apperrors.InvalidArgument("session_invalid_duration", "Duration must be in format HH:MM:SS")
	ErrSessionFutureDate      = apperrors.InvalidArgument("session_future_date", "Date can't be in the future")

	ErrIntervalMissingFields = apperrors.MissingFields("interval_missing_fields", "Missing required fields (start or end date)")
	ErrIntervalInvalidOrder  = apperrors.InvalidArgument("interval_invalid_order", "Start date must be before end date")
	ErrInvalidGroupBy        = apperrors.InvalidArgument("invalid_group_by", "Invalid group by value")
)

// Reviews
var (
	ErrReviewMissingFields = apperrors.InvalidArgument("review_missing_fields",
		"Missing required fields (user_id, training_plan_id or score))")
	ErrReviewScoreRange = apperrors.InvalidArgument("review_score_out_of_range", "Score must be between 1 and 5")
	ErrReviewOwnPlan    = apperrors.Conflict("review_own_plan", "Trainer can't review his own training plan")
	ErrReviewDuplicate  = apperrors.Conflict("review_duplicate", "Review already submitted for this training plan")
)

// Goals
var (
	ErrGoalMissingFields = apperrors.InvalidArgument("goal_missing_fields",
		"Faltan campos obligatorios (title, description, type o metric)")
	ErrGoalMetricNotPositive = apperrors.InvalidArgument("goal_metric_not_positive", "La métrica debe ser positiva")
	ErrGoalInvalidType       = apperrors.InvalidArgument("goal_invalid_type", "El tipo de meta debe ser Calorias, Pasos o Distancia")
	ErrGoalNotFound          = apperrors.NotFound("goal_not_found", "Goal not found")
)

// Users and admins
var (
	ErrUserMissingFields     = apperrors.InvalidArgument("user_missing_fields", "Falta nombre o contraseña").InErrorField()
	ErrEmailInUse            = apperrors.Conflict("email_in_use", "email %s ya está en uso")
	ErrAdminEmailInUse       = apperrors.Conflict("admin_email_in_use", "Email ya está en uso")
	ErrInvalidRole           = apperrors.InvalidArgument("invalid_role", "Role must be athlete or trainer").InErrorField()
	ErrUserIDNotFound        = apperrors.NotFound("user_id_not_found", "user with id %d not found")
	ErrAdminNotFound         = apperrors.NotFound("admin_not_found", "admin with id %d not found")
	ErrEmailNotFound         = apperrors.NotFound("email_not_found", "user with email %s not found")
	ErrMetadataNotFound      = apperrors.NotFound("metadata_not_found", "metadata for user with id %d not found")
	ErrMetadataMissingFields = apperrors.InvalidArgument("metadata_missing_fields",
		"Missing required fields (location, interests, birthDate, height or weight)").InErrorField()
	ErrNameMissing      = apperrors.InvalidArgument("name_missing", "Debe proporcionar nombre").InErrorField()
	ErrNameNotString    = apperrors.InvalidArgument("name_not_string", "Name must be a string").InErrorField()
	ErrBlockMissingUser = apperrors.InvalidArgument("block_missing_user", "Missing required fields (userId)")
	ErrPushTokenMissing = apperrors.InvalidArgument("push_token_missing", "Missing required fields (token)")
)

// Notifications
var (
	ErrNotificationMissingFields = apperrors.InvalidArgument("notification_missing_fields", "Missing required fields (title or body)")
	ErrNoPushToken               = apperrors.InvalidArgument("no_push_token", "user with id %d has no push token")
)
