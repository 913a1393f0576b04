// Package user models the read-only view of accounts provisioned by the identity
// provider. The service never creates or modifies users; it only resolves owners
// for notifications and serves lookups by email.
package user

import (
	"strings"
)

// Role is the authorization role attached to a user by the identity provider.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleCustomer Role = "customer"
)

type User struct {
	id    int64
	name  string
	email string
	role  Role
}

// RestoreUser rebuilds a user row. Email is stored lower-cased.
func RestoreUser(id int64, name, email string, role Role) *User {
	return &User{
		id:    id,
		name:  name,
		email: NormalizeEmail(email),
		role:  role,
	}
}

// NormalizeEmail trims and lower-cases an address for lookups and cache keys.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

// HasEmail reports whether notifications can be addressed to the user.
func (u *User) HasEmail() bool {
	return u.email != ""
}
