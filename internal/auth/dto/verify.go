package dto

type Verify2FAInput struct {
	Email          string `json:"email"`
	LoginAttemptID string `json:"loginAttemptId"`
	Code           string `json:"2FACode"`
}

type VerifyTokenInput struct {
	Token string `json:"token"`
}
