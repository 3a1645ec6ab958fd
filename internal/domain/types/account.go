package types

// FormField tags the form control an ErrorState belongs to.
type FormField string

const (
	// FieldUsername is the username control of the login form.
	FieldUsername FormField = "uname"
	// FieldPassword is the password control of the login and delete-account forms.
	FieldPassword FormField = "pass"
	// FieldCreateUsername is the username control of the create-account form.
	FieldCreateUsername FormField = "c_uname"
)

// Messages shown next to a form control.
const (
	MsgInvalidUsername  = "x Invalid username"
	MsgInvalidPassword  = "x Invalid password"
	MsgUsernameTaken    = "x Username already taken"
	MsgUsernameRequired = "x Username is required"
	MsgPasswordRequired = "x Password is required"
)

// ErrorState is a field-tagged form error. The zero value means no error.
type ErrorState struct {
	Field   FormField `json:"field" yaml:"field"`
	Message string    `json:"message" yaml:"message"`
}

// IsZero reports whether no error is set.
func (e ErrorState) IsZero() bool { return e.Field == "" && e.Message == "" }
