package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

func TestRequired(t *testing.T) {
	assert.Equal(t, "Email est requis", validator.Required("", "Email"))
	assert.Equal(t, "Email est requis", validator.Required("   \t", "Email"))
	assert.Empty(t, validator.Required("x", "Email"))
}

func TestLength(t *testing.T) {
	t.Run("too short after trimming", func(t *testing.T) {
		assert.Equal(t, "Adresse doit contenir au moins 10 caractères",
			validator.Length("   court   ", 10, 200, "Adresse"))
	})

	t.Run("too long", func(t *testing.T) {
		assert.Equal(t, "Nom ne peut pas dépasser 3 caractères",
			validator.Length("abcd", 2, 3, "Nom"))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.Empty(t, validator.Length("ab", 2, 3, "Nom"))
		assert.Empty(t, validator.Length("abc", 2, 3, "Nom"))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.Empty(t, validator.Length("Fès", 3, 3, "Ville"))
	})
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{" a@b.co ", true},
		{"pharmacie.atlas@gmail.com", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a@@b.co", false},
		{"a b@c.co", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.Email(tt.in), tt.in)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0612345678", true},
		{"+212612345678", true},
		{"+212 6 12 34 56 78", true},
		{"0522 12 34 56", true},
		{"0712345678", true},
		{"0812345678", false},
		{"123", false},
		{"212612345678", false},
		{"06123456789", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.Phone(tt.in), tt.in)
	}
}

func TestPassword(t *testing.T) {
	t.Run("reports every violation in order", func(t *testing.T) {
		res := validator.Password("abc")
		assert.False(t, res.IsValid)
		assert.Equal(t, []string{
			validator.MsgPasswordLength,
			validator.MsgPasswordUppercase,
			validator.MsgPasswordDigit,
		}, res.Errors)
	})

	t.Run("valid password", func(t *testing.T) {
		res := validator.Password("Abcdefg1")
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		assert.NotNil(t, res.Errors)
	})

	t.Run("empty password violates everything", func(t *testing.T) {
		res := validator.Password("")
		assert.Len(t, res.Errors, 4)
		assert.Equal(t, validator.MsgPasswordLength, res.Errors[0])
		assert.Equal(t, validator.MsgPasswordDigit, res.Errors[3])
	})
}
