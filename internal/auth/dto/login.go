package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorRequiredOutput is returned when credentials checked out but a
// second factor is pending. It carries the attempt ID for correlation, never
// the code.
type TwoFactorRequiredOutput struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}
