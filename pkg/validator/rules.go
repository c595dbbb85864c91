package validator

import "slices"

// RequiredString fails when value is blank. label is the human name of the field.
func RequiredString(field, value, label string) Rule {
	msg := Required(value, label)
	return Rule{
		Check: func() bool { return msg == "" },
		Error: ValidationError{Field: field, Message: msg},
	}
}

// LengthString fails when the trimmed value is outside [min, max].
func LengthString(field, value string, min, max int, label string) Rule {
	msg := Length(value, min, max, label)
	return Rule{
		Check: func() bool { return msg == "" },
		Error: ValidationError{Field: field, Message: msg},
	}
}

func EmailRule(field, value string) Rule {
	return Rule{
		Check: func() bool { return Email(value) },
		Error: ValidationError{Field: field, Message: MsgInvalidEmail},
	}
}

func PhoneRule(field, value string) Rule {
	return Rule{
		Check: func() bool { return Phone(value) },
		Error: ValidationError{Field: field, Message: MsgInvalidPhone},
	}
}

// PasswordRules returns one rule per violated password requirement.
func PasswordRules(field, value string) []Rule {
	res := Password(value)
	rules := make([]Rule, 0, len(res.Errors))
	for _, msg := range res.Errors {
		rules = append(rules, Rule{
			Check: func() bool { return false },
			Error: ValidationError{Field: field, Message: msg},
		})
	}
	return rules
}

// OneOf fails when value is not in allowed.
func OneOf(field, value string, allowed []string, msg string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{Field: field, Message: msg},
	}
}

// Equal fails when a and b differ.
func Equal(field, a, b, msg string) Rule {
	return Rule{
		Check: func() bool { return a == b },
		Error: ValidationError{Field: field, Message: msg},
	}
}
