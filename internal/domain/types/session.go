package types

// Session is the authenticated identity context for the current user.
//
// Authenticated is true iff the session store holds Username.
type Session struct {
	Username      Username `json:"username" yaml:"username"`
	Authenticated bool     `json:"authenticated" yaml:"authenticated"`
}

// LoginResult is the backend's answer to a login attempt. The two flags are
// independent: PassValid is meaningless when UserExists is false.
type LoginResult struct {
	UserExists bool `json:"user_exists"`
	PassValid  bool `json:"pass_valid"`
}

// SuccessResult is the backend's answer to account creation and deletion.
type SuccessResult struct {
	Success bool `json:"success"`
}
