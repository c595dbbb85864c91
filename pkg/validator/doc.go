// Package validator checks user-supplied fields before any remote call is made.
//
// Two layers are provided. The plain helpers (Required, Length, Email, Phone,
// Password) are pure functions returning either an empty string / true for
// valid input or a French message. The Rule layer wraps them so a form can be
// checked in one pass:
//
//	err := validator.Apply(
//		validator.First(
//			validator.RequiredString("email", in.Email, "Email"),
//			validator.EmailRule("email", in.Email),
//		),
//		validator.PasswordRules("password", in.Password)...,
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Get("email"), errs.Fields(), ...
//	}
//
// Apply evaluates every rule and reports every failure; a form is blocked as
// soon as any field has at least one message.
package validator
