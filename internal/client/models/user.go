// Package models contains the client-side view of directory accounts.
package models

import "fmt"

// User is a directory account as seen by the CLI. Password credentials
// never leave the server, so only the profile fields are present.
type User struct {
	ID        int64
	UserName  string
	Email     string
	FirstName string
	LastName  string
}

func (u *User) String() string {
	return fmt.Sprintf("#%d %s <%s> %s %s", u.ID, u.UserName, u.Email, u.FirstName, u.LastName)
}
