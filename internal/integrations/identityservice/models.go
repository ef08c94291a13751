package identityservice

// Profile модель профиля пользователя из IdentityService
type Profile struct {
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	IsAdmin         bool   `json:"is_admin"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
