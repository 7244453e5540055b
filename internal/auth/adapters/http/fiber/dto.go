package fiber

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"changeme"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Valid bool `json:"valid" example:"true"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_credentials"`
	Message string `json:"message,omitempty"`
}
