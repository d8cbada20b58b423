package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPlanMissing = NotFound("training_plan_not_found", "Training plan not found")

func TestErrorText(t *testing.T) {
	e := NotFound("user_id_not_found", "user with id %d not found").With(123)
	assert.Equal(t, "user with id 123 not found", e.Text())
	assert.Equal(t, "user with id 123 not found", e.Error())
	assert.Equal(t, FieldMessage, e.Field)
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading plan: %w", errPlanMissing.Wrap(errors.New("record not found")))

	assert.True(t, errors.Is(wrapped, errPlanMissing))
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Training plan not found", got.Text())
	assert.Contains(t, got.Error(), "record not found")
}

func TestInErrorFieldCopies(t *testing.T) {
	e := InvalidArgument("name_missing", "Debe proporcionar nombre")
	alt := e.InErrorField()

	assert.Equal(t, FieldError, alt.Field)
	assert.Equal(t, FieldMessage, e.Field)
}

func TestInternalHidesCause(t *testing.T) {
	e := Internal(errors.New("connection reset"))
	assert.Equal(t, "Internal Server Error", e.Text())
	assert.Equal(t, KindInternal, KindOf(e))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}
