package sqlite

import (
	"io"
	"strings"
	"time"

	"log/slog"

	"github.com/projexi/projexi/internal/db"
	"github.com/projexi/projexi/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.IdeaRepo = (*SQLiteRepo)(nil)
var _ repository.InvestmentRepo = (*SQLiteRepo)(nil)
var _ repository.ProductRepo = (*SQLiteRepo)(nil)
var _ repository.MessageRepo = (*SQLiteRepo)(nil)
var _ repository.ConnectionRepo = (*SQLiteRepo)(nil)
var _ repository.CommunityRepo = (*SQLiteRepo)(nil)
var _ repository.EventRepo = (*SQLiteRepo)(nil)
var _ repository.StatsRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// isUniqueViolation recognizes sqlite unique-constraint failures so callers
// can map them to repository.ErrDuplicate.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
