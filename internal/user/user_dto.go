package user

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=ADMIN CLIENT OFFICER CRO FINANCE"`
	Password string `json:"password" binding:"required,min=6"`
	Active   *bool  `json:"active"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN CLIENT OFFICER CRO FINANCE"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Active   *bool   `json:"active"`
}
