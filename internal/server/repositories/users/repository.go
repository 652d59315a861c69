package users

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository is the account store consumed by the user service. Uniqueness
// of username and email is enforced both by the Exists* pre-checks in the
// service and by storage-level unique constraints; implementations must
// report constraint violations as common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.User, error)
}
