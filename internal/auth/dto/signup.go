package dto

type SignupInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Requires2FA bool   `json:"requires2FA"`
}

type SignupOutput struct {
	Message string `json:"message"`
}
