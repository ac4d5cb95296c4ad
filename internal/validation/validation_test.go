package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, v.RegisterValidation("passwordpolicy", passwordPolicy))
	return v
}

func TestPasswordPolicy(t *testing.T) {
	v := newTestValidator(t)

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets policy", "Abcdef1!", true},
		{"missing uppercase", "abcdef1!", false},
		{"missing lowercase", "ABCDEF1!", false},
		{"missing digit", "Abcdefg!", false},
		{"missing symbol", "Abcdefg1", false},
		{"all classes with different symbol", "Xy9?zzzz", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Var(tc.password, "passwordpolicy")
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestFieldErrorsAggregatesViolations(t *testing.T) {
	v := newTestValidator(t)

	type payload struct {
		Username string `validate:"required,min=2,max=32"`
		Password string `validate:"required,min=8,max=200,passwordpolicy"`
	}

	err := v.Struct(payload{Username: "a", Password: "short"})
	require.Error(t, err)

	violations, ok := FieldErrors(err)
	require.True(t, ok)
	require.Len(t, violations, 2)
	require.Equal(t, "Username is too short", violations[0].Message)
	require.Equal(t, "Password is too short", violations[1].Message)
}

func TestFieldErrorsRejectsNonValidationErrors(t *testing.T) {
	_, ok := FieldErrors(plainError{})
	require.False(t, ok)
}

type plainError struct{}

func (plainError) Error() string { return "not a validation error" }
