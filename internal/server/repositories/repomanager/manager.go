package repomanager

import (
	"context"
	"database/sql"

	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/repositories/tags"
	"github.com/taskhub/taskhub/internal/server/repositories/tasks"
	"github.com/taskhub/taskhub/internal/server/repositories/tokens"
	"github.com/taskhub/taskhub/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Tags(db dbx.DBTX) tags.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
