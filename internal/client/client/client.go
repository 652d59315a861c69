package client

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// SignUpParams carries the profile and credentials for account creation.
type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	UserName  string
	Password  string
}

// UpdateParams carries an account mutation. Blank fields are left unchanged
// by the server; a password change requires OldPassword.
type UpdateParams struct {
	ID          int64
	UserName    string
	Email       string
	FirstName   string
	LastName    string
	OldPassword string
	NewPassword string
}

type Client interface {
	Close() error
	SignUp(ctx context.Context, params SignUpParams) (*models.User, error)
	SignIn(ctx context.Context, userName string, password string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, params UpdateParams) error
	DeleteUser(ctx context.Context, id int64) error
}
