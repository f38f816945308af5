package api

// swagger:model api.LoginJSONRequest
type LoginJSONRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
