package api

// 分頁參數，未帶時由 handler 套用預設值 (page=1, limit=10)
// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Page  *int `query:"page" validate:"omitempty,gte=1" example:"1"`
	Limit *int `query:"limit" validate:"omitempty,gte=1,lte=100" example:"10"`
}
