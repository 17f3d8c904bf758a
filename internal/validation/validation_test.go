package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "scribe/internal/errors"
)

type samplePayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Title    string `json:"title" validate:"omitempty,max=255"`
}

type sampleQuery struct {
	Page string `query:"page" validate:"omitempty,integer"`
}

func TestValidatorKeysErrorsByWireName(t *testing.T) {
	v := New()

	err := v.Validate(&samplePayload{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)

	assert.Equal(t, []string{"The name field is required."}, ve.Fields["name"])
	assert.Equal(t, []string{"The email must be a valid email address."}, ve.Fields["email"])
	assert.Equal(t, []string{"The password must be at least 8 characters."}, ve.Fields["password"])
}

func TestValidatorUsesQueryTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleQuery{Page: "abc"})
	require.Error(t, err)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"The page must be an integer."}, ve.Fields["page"])
}

func TestIntegerRule(t *testing.T) {
	v := New()

	for _, s := range []string{"1", "15", "-2", "0"} {
		assert.NoError(t, v.Validate(&sampleQuery{Page: s}), s)
	}

	for _, s := range []string{"1.5", "2e3", "abc", "1,000"} {
		err := v.Validate(&sampleQuery{Page: s})
		require.Error(t, err, s)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"The page must be an integer."}, ve.Fields["page"], s)
	}
}

func TestValidatorPassesValidPayload(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Name: "A", Email: "a@x.com", Password: "longenough1"})
	assert.NoError(t, err)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "t", "T", "TRUE", "true", "True"} {
		got, err := ParseBool(s)
		assert.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"0", "f", "F", "FALSE", "false", "False"} {
		got, err := ParseBool(s)
		assert.NoError(t, err, s)
		assert.False(t, got, s)
	}
	for _, s := range []string{"yes", "no", "on", "off", "2", ""} {
		_, err := ParseBool(s)
		assert.Error(t, err, s)
	}
}
