package constant

// DefaultBasePath is the segment every user endpoint is rooted at.
const DefaultBasePath = "user"

// Endpoint segments, relative to the base path unless noted otherwise.
const (
	LoginPath                 = "login"
	LogoutPath                = "logout"
	ProfilePath               = "profile"
	DocumentVerifyPath        = "document/verify"
	ChangePasswordPath        = "change/password"
	DocumentResendOTPPath     = "document/resend/otp"
	ScheduleSessionVerifyPath = "ScheduleSession/verify"
	SessionResendOTPPath      = "session/resend/otp"

	// VerifyUserPath is absolute: the identity check lives outside the base path.
	VerifyUserPath = "verify/user"
)
