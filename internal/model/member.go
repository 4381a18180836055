package model

import "time"

// Role orders workspace permissions from weakest to strongest. Owners can do
// everything admins can, and so on down.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
	RoleOwner:  4,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the permissions of min.
// Unknown roles never satisfy anything.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] != 0 && roleRank[r] >= roleRank[min]
}

type WorkspaceMember struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        Role      `json:"role"`
	AddedBy     *int64    `json:"added_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
