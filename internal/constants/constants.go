package constants

// Credential headers used in place of a session or token.
const (
	HeaderLogin    = "Login"
	HeaderPassword = "Password"
)

// Context keys
const (
	ContextKeyUserID        = "user_id"
	ContextKeyAdvertisement = "advertisement"
)

// Validation limits
const (
	MinUsernameLength = 2
	MaxUsernameLength = 32
	MinPasswordLength = 8
	MaxPasswordLength = 200
	MaxTitleLength    = 100
)

// PasswordSymbols is the set of symbols accepted by the password policy.
const PasswordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"
