package applib

import (
	"slices"
)

// User is the memento of the user of a session. Session scoped
// support methods (for example hideFor... and disableFor...) get it
// as single argument.
type User struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
}

func NewUser(name string, roles ...string) *User {
	return &User{Name: name, Roles: slices.Clone(roles)}
}

func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, role)
}

// Persistable is implemented by domain objects knowing whether
// they are already persisted. It is used to evaluate the
// OncePersisted and UntilPersisted situations.
type Persistable interface {
	IsPersisted() bool
}
