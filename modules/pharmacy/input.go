package pharmacy

import (
	"github.com/pharmagarde/pharmagarde/pkg/cities"
	"github.com/pharmagarde/pharmagarde/pkg/sanitizer"
	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

// RegisterInput is the registration form of a pharmacist.
type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	PharmacistName  string `json:"pharmacist_name"`
	PharmacyName    string `json:"pharmacy_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Phone           string `json:"phone"`
}

func (in RegisterInput) info() Info {
	return Info{
		Name:           in.PharmacyName,
		PharmacistName: in.PharmacistName,
		Address:        in.Address,
		City:           in.City,
		Phone:          in.Phone,
	}
}

const (
	msgPasswordMismatch = "Les mots de passe ne correspondent pas"
	msgUnknownCity      = "Ville inconnue"
)

// Validate reports every field of the form that is invalid, at most one
// message per field.
func (in RegisterInput) Validate() error {
	password := append(
		[]validator.Rule{validator.RequiredString("password", in.Password, "Mot de passe")},
		validator.PasswordRules("password", in.Password)...,
	)

	rules := []validator.Rule{
		validator.First(
			validator.RequiredString("email", in.Email, "Email"),
			validator.EmailRule("email", in.Email),
		),
		validator.First(password...),
		validator.Equal("confirm_password", in.Password, in.ConfirmPassword, msgPasswordMismatch),
	}
	rules = append(rules, listingRules(in.info(), "pharmacy_name")...)
	return validator.Apply(rules...)
}

// Validate checks the editable listing fields with the registration rules.
func (info Info) Validate() error {
	return validator.Apply(listingRules(info, "name")...)
}

func listingRules(info Info, nameField string) []validator.Rule {
	return []validator.Rule{
		validator.First(
			validator.RequiredString("pharmacist_name", info.PharmacistName, "Nom du pharmacien"),
			validator.LengthString("pharmacist_name", info.PharmacistName, 2, 50, "Nom du pharmacien"),
		),
		validator.First(
			validator.RequiredString(nameField, info.Name, "Nom de la pharmacie"),
			validator.LengthString(nameField, info.Name, 2, 100, "Nom de la pharmacie"),
		),
		validator.First(
			validator.RequiredString("address", info.Address, "Adresse"),
			validator.LengthString("address", info.Address, 10, 200, "Adresse"),
		),
		validator.First(
			validator.RequiredString("city", info.City, "Ville"),
			validator.OneOf("city", info.City, cities.List(), msgUnknownCity),
		),
		validator.First(
			validator.RequiredString("phone", info.Phone, "Téléphone"),
			validator.PhoneRule("phone", info.Phone),
		),
	}
}

// sanitize cleans the free-text fields. City is an exact list entry and is
// kept as is.
func (info Info) sanitize() Info {
	clean := sanitizer.Compose(sanitizer.Input, sanitizer.SingleSpace)
	return Info{
		Name:           clean(info.Name),
		PharmacistName: clean(info.PharmacistName),
		Address:        clean(info.Address),
		City:           info.City,
		Phone:          sanitizer.FormatPhoneNumber(info.Phone),
	}
}
