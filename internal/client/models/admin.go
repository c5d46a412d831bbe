package models

// Role is an administrator's permission level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleModerator  Role = "moderator"
)

// Label is the human name of the role.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleModerator:
		return "Moderator"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleModerator:
		return true
	}
	return false
}

// Admin is an administrator account as returned by /admin endpoints and
// cached in the session after login.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
	LastLogin Timestamp `json:"lastLogin"`
}

// CreateAdminRequest is the body of POST /admin.
type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// UpdateAdminRequest is the body of PUT /admin/:id. Nil fields are left
// unchanged by the server.
type UpdateAdminRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// UpdateProfileRequest is the body of PUT /admin/profile.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}
