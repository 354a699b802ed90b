package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/auth"
	"github.com/taskhub/taskhub/internal/server/config"
	"github.com/taskhub/taskhub/internal/server/repositories/repomanager"
)

var errInvalidToken = fmt.Errorf("%w: invalid or expired token", common.ErrorUnauthorized)

type TokenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	secret      []byte
}

func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TokenService {
	return &TokenService{
		db:          db,
		repomanager: m,
		secret:      []byte(cfg.SecretKey),
	}
}

// IssueOrFetch returns the user's token, minting one if the user has none.
func (s *TokenService) IssueOrFetch(ctx context.Context, userID int64) (string, error) {
	return s.issueOrFetch(ctx, s.db, userID)
}

// issueOrFetch runs against db, which may be a transaction. Concurrent
// callers converge on whichever token was stored first.
func (s *TokenService) issueOrFetch(ctx context.Context, db dbx.DBTX, userID int64) (string, error) {
	repo := s.repomanager.Tokens(db)

	token, err := repo.FindByUser(ctx, userID)
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", err
	}

	key, err := auth.GenerateToken(userID, s.secret)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := repo.Create(ctx, userID, key); err != nil {
		return "", err
	}

	token, err = repo.FindByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return token.Key, nil
}

// Resolve maps a raw credential to its user id. An empty credential is a
// validation error; anything that is not a live token is unauthorized.
func (s *TokenService) Resolve(ctx context.Context, raw string) (int64, error) {
	key := auth.ExtractToken(raw)
	if key == "" {
		return 0, common.ErrorMissingToken
	}

	userID, err := auth.GetUserIDFromToken(key, s.secret)
	if err != nil {
		return 0, errInvalidToken
	}

	token, err := s.repomanager.Tokens(s.db).Find(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, errInvalidToken
		}
		return 0, err
	}

	if token.UserID != userID {
		return 0, errInvalidToken
	}

	return userID, nil
}
