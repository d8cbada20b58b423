package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

var ErrInvalidID = apperrors.InvalidArgument("invalid_id", "Invalid id")

// paramID reads a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// planParam reads a plan id. A malformed id cannot name a plan, so it is
// reported the same way as an absent one.
func planParam(c *gin.Context, name string) (uint, error) {
	id, err := paramID(c, name)
	if err != nil {
		return 0, validation.ErrPlanNotFound
	}
	return id, nil
}

// bindJSON decodes an optional JSON body into v. An empty body leaves v
// untouched so missing fields are reported by the service layer.
func bindJSON(c *gin.Context, v interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return validation.ErrInvalidInput.Wrap(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return validation.ErrInvalidInput.Wrap(err)
	}
	return nil
}

// queryRaw returns a query parameter as a JSON string, or nil when absent.
func queryRaw(c *gin.Context, key string) json.RawMessage {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	raw, _ := json.Marshal(v)
	return raw
}

// fail hands err to the error middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
