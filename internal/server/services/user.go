// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, authentication with session-token
// issuance, and uniqueness-constrained account reads and mutations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/cryptox"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// SignUpParams is the transient sign-up input. All fields are required.
type SignUpParams struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	UserName  string `validate:"required"`
	Password  string `validate:"required"`
}

// UpdateParams is the transient update input. ID identifies the target;
// every other field is optional and left unchanged when blank. Changing the
// password requires OldPassword to verify against the stored credentials.
type UpdateParams struct {
	ID          int64
	UserName    string
	Email       string
	FirstName   string
	LastName    string
	OldPassword string
	NewPassword string
}

// UserService provides the account operations:
//   - SignUp: create accounts with fresh password credentials
//   - Authenticate: verify credentials and mint a session token
//   - GetByID / GetAll: reads
//   - Update / Delete: uniqueness-checked mutations
//
// The service holds no per-request state and is safe for concurrent use.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	validate                     *validator.Validate
	jwtSecret                    []byte
	tokenIssuer                  string
	tokenAudience                string
	sessionTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		validate:                     validator.New(validator.WithRequiredStructEnabled()),
		jwtSecret:                    []byte(cfg.SecretKey),
		tokenIssuer:                  cfg.TokenIssuer,
		tokenAudience:                cfg.TokenAudience,
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// SignUp validates params, checks username and email uniqueness, hashes the
// password with a fresh salt, and inserts the account. The existence checks
// and the insert run in one transaction; the storage-level unique
// constraints back them against concurrent sign-ups.
func (s *UserService) SignUp(ctx context.Context, params SignUpParams) (*models.User, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	hash, salt, err := cryptox.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserName:     params.UserName,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.ExistsByUserName(ctx, params.UserName)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: username %q is already taken", common.ErrorAlreadyExists, params.UserName)
		}

		taken, err = repo.ExistsByEmail(ctx, params.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: email %q is already taken", common.ErrorAlreadyExists, params.Email)
		}

		user, err = repo.Create(ctx, user)
		return err
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the username/password pair and, on success, returns
// the account together with a signed session token. Unknown usernames and
// digest mismatches produce the same non-enumerating error.
func (s *UserService) Authenticate(ctx context.Context, userName, password string) (*models.User, string, error) {
	if userName == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", fmt.Errorf("%w: username or password is incorrect", common.ErrorUnauthorized)
		}
		return nil, "", err
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("%w: username or password is incorrect", common.ErrorUnauthorized)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenIssuer, s.tokenAudience, s.sessionTokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// GetByID returns the account with the given id, or (nil, nil) when absent:
// a missing account is an empty read result, not a fault.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetAll returns every account in the store.
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).GetAll(ctx)
}

// Update applies the non-blank fields of params to the target account.
// Username and email changes are uniqueness-checked; a password change
// requires the old password to verify and re-hashes with a fresh salt.
// The whole read-modify-write runs in one transaction.
func (s *UserService) Update(ctx context.Context, params UpdateParams) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, params.ID)
		if err != nil {
			return err
		}

		if userName := strings.TrimSpace(params.UserName); userName != "" && userName != user.UserName {
			taken, err := repo.ExistsByUserName(ctx, userName)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: username %q is already taken", common.ErrorAlreadyExists, userName)
			}
			user.UserName = userName
		}

		if email := strings.TrimSpace(params.Email); email != "" && email != user.Email {
			taken, err := repo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: email %q is already taken", common.ErrorAlreadyExists, email)
			}
			user.Email = email
		}

		if firstName := strings.TrimSpace(params.FirstName); firstName != "" {
			user.FirstName = firstName
		}
		if lastName := strings.TrimSpace(params.LastName); lastName != "" {
			user.LastName = lastName
		}

		if strings.TrimSpace(params.NewPassword) != "" {
			ok, err := cryptox.VerifyPassword(params.OldPassword, user.PasswordHash, user.PasswordSalt)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: password is wrong", common.ErrorValidation)
			}

			hash, salt, err := cryptox.HashPassword(params.NewPassword)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
			user.PasswordSalt = salt
		}

		return repo.Update(ctx, user)
	})
}

// Delete removes the account with the given id. A missing account is
// reported as common.ErrorNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Users(s.db).Delete(ctx, id)
}
