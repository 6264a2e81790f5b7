package domain

import "fmt"

// Role is the access level stored on a user account.
type Role int

const (
	RoleAdmin    Role = 1
	RoleEditor   Role = 2
	RoleReadOnly Role = 3
	RoleNoAccess Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	case RoleReadOnly:
		return "read-only"
	case RoleNoAccess:
		return "no-access"
	}
	return fmt.Sprintf("invalid(%d)", int(r))
}

func (r Role) IsValid() bool {
	return r >= RoleAdmin && r <= RoleNoAccess
}

// CanSignIn reports whether an account with this role may open a session.
func (r Role) CanSignIn() bool {
	return r >= RoleAdmin && r <= RoleReadOnly
}

// CanWrite reports whether the role may create and update projects.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanDelete reports whether the role may remove projects.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanManageAccounts reports whether the role may register accounts.
func (r Role) CanManageAccounts() bool {
	return r == RoleAdmin
}

// UserAccount is a login identity. PasswordHash holds a bcrypt hash; the
// plaintext password is never stored.
type UserAccount struct {
	AccountID    int
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
}
