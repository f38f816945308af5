// File: internal/api/update_profile_request.go
package api

// 兩個欄位皆可省略，省略的欄位維持原值
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" example:"Alice Chen"`
	Email *string `json:"email,omitempty" validate:"omitempty,email" example:"alice.chen@example.com"`
}
