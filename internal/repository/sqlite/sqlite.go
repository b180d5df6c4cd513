package sqlite

import (
	"os"
	"time"

	"log/slog"

	"github.com/rskd/talent/internal/db"
	"github.com/rskd/talent/pkg/repository"
)

// SQLiteRepo implements the candidate store using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interface.
var _ repository.CandidateRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
