package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/cryptox"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/repomanager"
)

var errBadCredentials = fmt.Errorf("%w: invalid login credentials", common.ErrorUnauthorized)

type RegisterInput struct {
	Username string
	Email    string
	Name     string
	Password string
}

// UserPatch is a partial account update; nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Name     *string
	Password *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil && p.Password == nil
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *TokenService
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *TokenService) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
	}
}

func hashPassword(password string) ([]byte, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if cryptox.IsTooLong(err) {
			return nil, common.Invalid("password is too long")
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Register creates the account and its token in one transaction and returns
// the token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", common.Invalid("missing required fields")
	}
	if err := checkLength("username", in.Username, models.MaxUsernameLength); err != nil {
		return "", err
	}
	if err := checkLength("name", in.Name, models.MaxNameLength); err != nil {
		return "", err
	}
	if err := checkEmail(in.Email, models.MaxEmailLength); err != nil {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	var token string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Username:     in.Username,
			Email:        in.Email,
			Name:         in.Name,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}

		token, err = s.tokens.issueOrFetch(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Authenticate verifies the credentials and returns the user id. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, common.Invalid("missing required fields")
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnCompare(password)
			return 0, errBadCredentials
		}
		return 0, err
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return 0, errBadCredentials
	}

	return user.ID, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	userID, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.IssueOrFetch(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, userID int64, patch UserPatch) error {
	if patch.IsEmpty() {
		return common.Invalid("nothing to update")
	}

	var changes models.UserChanges

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return common.Invalid("username must not be empty")
		}
		if err := checkLength("username", username, models.MaxUsernameLength); err != nil {
			return err
		}
		changes.Username = &username
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if err := checkEmail(email, models.MaxEmailLength); err != nil {
			return err
		}
		changes.Email = &email
	}
	if patch.Name != nil {
		if err := checkLength("name", *patch.Name, models.MaxNameLength); err != nil {
			return err
		}
		changes.Name = patch.Name
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return common.Invalid("password must not be empty")
		}
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return err
		}
		changes.PasswordHash = hash
	}

	return s.repomanager.Users(s.db).Update(ctx, userID, changes)
}

// Delete removes the user's tasks, tags, token and the user itself in one
// transaction.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Tasks(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := s.repomanager.Tags(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := s.repomanager.Tokens(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, userID)
	})
}
