package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/repomanager"
)

type TagService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTagService(db *sql.DB, m repomanager.RepositoryManager) *TagService {
	return &TagService{db: db, repomanager: m}
}

func (s *TagService) Create(ctx context.Context, userID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, common.Invalid("tag name is required")
	}
	if err := checkLength("tag name", name, models.MaxTagNameLength); err != nil {
		return 0, err
	}
	return s.repomanager.Tags(s.db).Create(ctx, userID, name)
}

func (s *TagService) List(ctx context.Context, userID int64) ([]models.Tag, error) {
	return s.repomanager.Tags(s.db).List(ctx, userID)
}

// Delete detaches the tag from the user's tasks and removes it, atomically.
// Tags of other users are reported as not found and left untouched.
func (s *TagService) Delete(ctx context.Context, userID, tagID int64) error {
	if tagID <= 0 {
		return common.Invalid("tag ID is required")
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ok, err := s.repomanager.Tags(tx).Exists(ctx, userID, tagID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: tag not found", common.ErrorNotFound)
		}

		if _, err := s.repomanager.Tasks(tx).DetachTag(ctx, userID, tagID); err != nil {
			return err
		}
		return s.repomanager.Tags(tx).Delete(ctx, userID, tagID)
	})
}
