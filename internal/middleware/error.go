package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/i18n"
)

// legacyStatus keeps the statuses deployed clients were written against.
var legacyStatus = map[string]int{
	"interval_missing_fields": http.StatusUnauthorized,
	"admin_email_in_use":      http.StatusInternalServerError,
}

// ErrorRenderer turns domain errors into JSON responses.
type ErrorRenderer struct {
	catalog *i18n.Catalog
	legacy  bool
}

// NewErrorRenderer creates a renderer. With legacy set, the error codes in
// legacyStatus keep their historical status instead of the one their kind maps to.
func NewErrorRenderer(catalog *i18n.Catalog, legacy bool) *ErrorRenderer {
	return &ErrorRenderer{catalog: catalog, legacy: legacy}
}

// Status maps an error to its HTTP status
func (r *ErrorRenderer) Status(err error) int {
	e, ok := apperrors.As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if r.legacy {
		if status, ok := legacyStatus[e.Code]; ok {
			return status
		}
	}

	switch e.Kind {
	case apperrors.KindInvalidArgument, apperrors.KindMissingFields:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Body builds the JSON body for err. Causes of internal errors are logged,
// never returned.
func (r *ErrorRenderer) Body(err error) gin.H {
	e, ok := apperrors.As(err)
	if !ok {
		e = apperrors.Internal(err)
	}
	if e.Kind == apperrors.KindInternal && e.Err != nil {
		log.Printf("Error: %v", e.Err)
	}
	return gin.H{e.Field: r.catalog.Translate(e.Code, e.Message, e.Args...)}
}

// ErrorHandler renders the last error a handler attached with c.Error,
// unless the handler already wrote a response
func ErrorHandler(r *ErrorRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		c.JSON(r.Status(err), r.Body(err))
	}
}

// Recovery turns panics into a 500 JSON response
func Recovery(r *ErrorRenderer) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, r.Body(apperrors.Internal(nil)))
	})
}
