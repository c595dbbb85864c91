package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Run("default message when empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.NoError(t, errs.Err())
	})

	t.Run("keeps order and groups by field", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.AddMessage("password", "too short")
		errs.AddMessage("email", "")
		errs.AddMessage("email", "is required")
		errs.AddMessage("password", "missing digit")

		assert.Equal(t, "validation failed: password: too short; email: is required; password: missing digit", errs.Error())
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("phone"))
		assert.Equal(t, map[string][]string{
			"password": {"too short", "missing digit"},
			"email":    {"is required"},
		}, errs.Map())
	})
}

func TestApply(t *testing.T) {
	t.Run("no violations", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Atlas", "Nom"),
			validator.EmailRule("email", "a@b.co"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing field", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "", "Nom"),
			validator.PhoneRule("phone", "123"),
			validator.EmailRule("email", "a@b.co"),
		)
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"name", "phone"}, errs.Fields())
	})

	t.Run("password rules report all violations", func(t *testing.T) {
		err := validator.Apply(validator.PasswordRules("password", "abc")...)
		errs := validator.ExtractValidationErrors(err)
		assert.Len(t, errs.Get("password"), 3)
	})
}

func TestFirst(t *testing.T) {
	t.Run("stops at the first failing rule of a field", func(t *testing.T) {
		err := validator.Apply(validator.First(
			validator.RequiredString("email", "", "Email"),
			validator.EmailRule("email", ""),
		))
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"Email est requis"}, errs.Get("email"))
	})

	t.Run("falls through to later rules", func(t *testing.T) {
		err := validator.Apply(validator.First(
			validator.RequiredString("email", "nope", "Email"),
			validator.EmailRule("email", "nope"),
		))
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{validator.MsgInvalidEmail}, errs.Get("email"))
	})

	t.Run("passes when every rule passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.First(
			validator.RequiredString("email", "a@b.co", "Email"),
			validator.EmailRule("email", "a@b.co"),
		)))
	})
}

func TestOneOfAndEqual(t *testing.T) {
	err := validator.Apply(
		validator.OneOf("city", "Paris", []string{"Rabat", "Fès"}, "Ville inconnue"),
		validator.Equal("confirm", "a", "b", "Les mots de passe ne correspondent pas"),
	)
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"Ville inconnue"}, errs.Get("city"))
	assert.Equal(t, []string{"Les mots de passe ne correspondent pas"}, errs.Get("confirm"))
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))

	wrapped := fmt.Errorf("register: %w", validator.ValidationErrors{{Field: "email", Message: "x"}})
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	assert.False(t, validator.IsValidationError(errors.New("other")))
}
