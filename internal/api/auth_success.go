package api

// Cookie 登入成功時的回應，token 已寫入 HTTP-only cookie
// swagger:model api.AuthSuccess
type AuthSuccess struct {
	Message string       `json:"message" example:"Authentication successful"`
	User    UserResponse `json:"user"`
}
