package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8"`
	Kind     int    `json:"kind" validate:"oneof=-1 1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(signup{Username: "alice_1", Password: "password", Kind: 1}))

	err := v.Validate(signup{Username: "a!", Password: "short", Kind: 0})
	require.Error(t, err)

	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
	assert.Contains(t, vErr.Fields["username"], "letters")
	assert.Equal(t, "must be at least 8 characters", vErr.Fields["password"])
	assert.Equal(t, "must be one of: -1 1", vErr.Fields["kind"])
	assert.Contains(t, err.Error(), "validation failed: kind")
}

func TestValidator_Required(t *testing.T) {
	err := New().Validate(signup{Kind: -1})

	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["username"])
	assert.Equal(t, "is required", vErr.Fields["password"])
}

func TestValidator_PasswordTag(t *testing.T) {
	type creds struct {
		Password string `json:"password" validate:"required,password"`
	}

	require.NoError(t, New().Validate(creds{Password: "пароль12"}))

	err := New().Validate(creds{Password: "short"})
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must be 8-128 characters", vErr.Fields["password"])
}
