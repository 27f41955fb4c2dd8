package domain

import "errors"

// Role is the closed set of actor categories. The zero value means the
// caller is not authenticated.
type Role string

const (
	RoleAnonymous Role = ""
	RoleAdmin     Role = "admin"
	RoleSeller    Role = "seller"
	RoleCustomer  Role = "customer"
)

var ErrForbidden = errors.New("access forbidden")
var ErrInvalidIdentity = errors.New("invalid identity")

// ParseRole maps a raw string to a Role. Unknown values parse as anonymous.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return Role(s), true
	default:
		return RoleAnonymous, false
	}
}

// Valid reports whether r is one of the authenticated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return true
	}
	return false
}

// Layout returns the navigation shell that wraps pages for this role.
// The switch is exhaustive over the closed role set so a new role cannot
// be added without deciding its layout.
func (r Role) Layout() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSeller:
		return "seller"
	case RoleCustomer:
		return "customer"
	case RoleAnonymous:
		return "none"
	}
	return "none"
}

// Identity is the authenticated actor held for the lifetime of a session.
// The role is frozen at login time; changing it requires a new login.
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Clone returns a copy so consumers never share the session's own value.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}
