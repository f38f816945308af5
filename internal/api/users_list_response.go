package api

// swagger:model api.UsersListResponse
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total" example:"42"`
	Page  int            `json:"page" example:"1"`
	Limit int            `json:"limit" example:"10"`
}
