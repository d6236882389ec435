package types

// RegisterRequest is the account sign-up payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionStatus describes the locally stored session.
type SessionStatus struct {
	LoggedIn    bool   `json:"logged_in" yaml:"logged_in"`
	UserID      UserID `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}
