package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Gym not found"), http.StatusNotFound},
		{"forbidden", Forbidden("Unauthorized"), http.StatusForbidden},
		{"unauthorized", Unauthorized("Invalid token"), http.StatusUnauthorized},
		{"bad request", BadRequest("Invalid gym ID"), http.StatusBadRequest},
		{"validation", Validation(Field("phone", "phone is required")), http.StatusBadRequest},
		{"conflict", Conflict("Gym still has members", errors.New("fk")), http.StatusConflict},
		{"wrapped", fmt.Errorf("service: %w", NotFound("Member not found")), http.StatusNotFound},
		{"plain", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestValidationMessageNamesFields(t *testing.T) {
	err := Validation(Field("name", "name is required"), Field("phone", "phone is required"))

	assert.Equal(t, "Validation failed: name, phone", err.Message)
	require.Len(t, err.Fields, 2)
	assert.True(t, IsKind(err, KindValidation))
}

func TestConflictUnwraps(t *testing.T) {
	cause := errors.New("violates foreign key constraint")
	err := Conflict("Gym is still referenced", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "violates foreign key constraint")
}
