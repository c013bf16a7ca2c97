package change_role

// ChangeRoleRequest HTTP request model
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER OWNER user owner"`
}
