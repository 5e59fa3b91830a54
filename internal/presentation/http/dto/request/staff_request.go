package request

// CreateStaffRequest represents a staff creation request
type CreateStaffRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Role string `json:"role" binding:"omitempty,max=50"`
}

// UpdateStaffRequest represents a staff update request
type UpdateStaffRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=255"`
	Role   *string `json:"role" binding:"omitempty,max=50"`
	Active *bool   `json:"active"`
}
