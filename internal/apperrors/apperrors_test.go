package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("user", "u1"), ErrNotFound, true},
		{"Reference wraps ErrReference", Reference("userId", "u1"), ErrReference, true},
		{"Conflict wraps ErrConflict", Conflict("profile", "user u1 already has one"), ErrConflict, true},
		{"Precondition wraps ErrPrecondition", Precondition("user is not subscribed"), ErrPrecondition, true},
		{"ValidationFailed wraps ErrValidation", ValidationFailed("email", "email is required"), ErrValidation, true},
		{"NotFound does not match ErrConflict", NotFound("user", "u1"), ErrConflict, false},
		{"Precondition does not match ErrNotFound", Precondition("nope"), ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "user with id u1 doesn't exist", NotFound("user", "u1").Error())
	assert.Equal(t, "memberTypeId gold doesn't reference an existing entity", Reference("memberTypeId", "gold").Error())
	assert.Equal(t, "profile conflict: user u1 already has a profile", Conflict("profile", "user u1 already has a profile").Error())
	assert.Equal(t, "user is not subscribed", Precondition("user is not subscribed").Error())
}

func TestFieldIsCarried(t *testing.T) {
	assert.Equal(t, "userId", Reference("userId", "u1").Field)
	assert.Equal(t, "email", ValidationFailed("email", "invalid email").Field)
}
