package models

// AuthMode selects which auth form is shown.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// Field names accepted by the form editor.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// AuthForm is the transient input buffer of the login/signup form. It only
// exists while no user is logged in.
//
// Names are required only in signup mode; login validates Email and
// Password alone.
type AuthForm struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// Set assigns the named field. It reports false for an unknown name.
func (f *AuthForm) Set(field, value string) bool {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	default:
		return false
	}
	return true
}

// ClearPasswords empties both password fields.
func (f *AuthForm) ClearPasswords() {
	f.Password = ""
	f.ConfirmPassword = ""
}
