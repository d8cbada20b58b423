package i18n

import (
	"fmt"
	"strings"
)

// Catalog overrides default error messages for a locale. The empty locale
// keeps each message exactly as the domain defines it.
type Catalog struct {
	locale    string
	templates map[string]string
}

// Supported lists the locales with translations.
var Supported = []string{"", "en", "es"}

func New(locale string) *Catalog {
	locale = strings.ToLower(strings.TrimSpace(locale))
	return &Catalog{
		locale:    locale,
		templates: catalogs[locale],
	}
}

func (c *Catalog) Locale() string {
	return c.locale
}

// Translate renders the template registered for code, falling back to the
// provided default.
func (c *Catalog) Translate(code, fallback string, args ...any) string {
	tmpl := fallback
	if c != nil {
		if t, ok := c.templates[code]; ok {
			tmpl = t
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

var catalogs = map[string]map[string]string{
	"en": {
		"goal_missing_fields":      "Missing required fields (title, description, type or metric)",
		"goal_metric_not_positive": "Metric must be positive",
		"goal_invalid_type":        "Goal type must be Calorias, Pasos or Distancia",
		"user_missing_fields":      "Missing name or email",
		"email_in_use":             "email %s is already in use",
		"admin_email_in_use":       "Email is already in use",
		"name_missing":             "Name is required",
	},
	"es": {
		"training_plan_not_found":     "Plan de entrenamiento no encontrado",
		"user_not_found":              "Usuario no encontrado",
		"trainer_not_found":           "Entrenador no encontrado",
		"goal_not_found":              "Meta no encontrada",
		"plan_missing_fields":         "Faltan campos obligatorios (title, type, description, difficulty, trainerId, days, start o end)",
		"plan_invalid_clock":          "Inicio y fin deben tener formato HH:MM",
		"plan_invalid_window":         "La hora de inicio debe ser anterior a la de fin",
		"plan_invalid_days":           "Los días deben ser nombres de días de la semana",
		"plan_invalid_state":          "El estado debe ser active o inactive",
		"session_missing_fields":      "Faltan campos obligatorios (distance, duration, steps, calories o date)",
		"session_not_positive":        "Distancia, duración, pasos y calorías deben ser positivos",
		"session_invalid_duration":    "La duración debe tener formato HH:MM:SS",
		"session_future_date":         "La fecha no puede estar en el futuro",
		"invalid_timestamp":           "La fecha no es válida",
		"interval_missing_fields":     "Faltan campos obligatorios (start o end)",
		"interval_invalid_order":      "La fecha de inicio debe ser anterior a la de fin",
		"invalid_group_by":            "Valor de agrupamiento inválido",
		"review_missing_fields":       "Faltan campos obligatorios (user_id, training_plan_id o score)",
		"review_score_out_of_range":   "El puntaje debe estar entre 1 y 5",
		"review_own_plan":             "Un entrenador no puede calificar su propio plan",
		"review_duplicate":            "Ya calificaste este plan de entrenamiento",
		"blocked":                     "No tenés acceso al sistema",
		"user_service_unavailable":    "Servicio de usuarios no disponible",
		"invalid_body":                "Cuerpo de la solicitud inválido",
		"invalid_id":                  "Identificador inválido",
		"internal_error":              "Error interno del servidor",
		"name_not_string":             "El nombre debe ser un texto",
		"metadata_missing_fields":     "Faltan campos obligatorios (location, interests, birthDate, height o weight)",
		"no_push_token":               "el usuario con id %d no tiene push token",
		"user_id_not_found":           "usuario con id %d no encontrado",
		"notification_missing_fields": "Faltan campos obligatorios (title o body)",
		"push_token_missing":          "Falta el token",
		"block_missing_user":          "Falta el userId",
	},
}
